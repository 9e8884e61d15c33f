package models

// Doctor is a registered doctor offered as a booking choice.
type Doctor struct {
	DID        uint   `gorm:"column:did;primaryKey" json:"did"`
	Email      string `gorm:"size:50" json:"email"`
	DoctorName string `gorm:"column:doctorname;size:50;index" json:"doctorname"`
	Dept       string `gorm:"size:50;index" json:"dept"`
}

func (Doctor) TableName() string { return "doctors" }
