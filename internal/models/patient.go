package models

import "unicode/utf8"

// Patient is one booked appointment slot.
type Patient struct {
	PID     uint   `gorm:"column:pid;primaryKey" json:"pid"`
	Email   string `gorm:"size:50;index" json:"email"`
	Name    string `gorm:"size:50" json:"name"`
	Gender  string `gorm:"size:50" json:"gender"`
	Slot    string `gorm:"size:50" json:"slot"`
	Disease string `gorm:"size:50" json:"disease"`
	Time    string `gorm:"size:50;not null" json:"time"`
	Date    string `gorm:"size:50;not null" json:"date"`
	Dept    string `gorm:"size:50" json:"dept"`
	Number  string `gorm:"size:50" json:"number"`
}

func (Patient) TableName() string { return "patients" }

// PhoneNumberLength is the number of characters a booking's phone number must have.
const PhoneNumberLength = 10

// ValidPhoneNumber reports whether number is acceptable for a new booking.
// Length is counted in characters, not bytes.
func ValidPhoneNumber(number string) bool {
	return utf8.RuneCountInString(number) == PhoneNumberLength
}
