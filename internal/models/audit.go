package models

// Test is only queried to check that the database answers.
type Test struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:100" json:"email"`
}

func (Test) TableName() string { return "test" }

// Trigger is an audit row written outside the application, usually by a
// database trigger on the patients table. The application only reads it.
type Trigger struct {
	TID       uint   `gorm:"column:tid;primaryKey" json:"tid"`
	PID       uint   `gorm:"column:pid" json:"pid"`
	Email     string `gorm:"size:50" json:"email"`
	Name      string `gorm:"size:50" json:"name"`
	Action    string `gorm:"size:50" json:"action"`
	Timestamp string `gorm:"size:50" json:"timestamp"`
}

func (Trigger) TableName() string { return "trigr" }
