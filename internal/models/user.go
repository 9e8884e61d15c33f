package models

import (
	"golang.org/x/crypto/bcrypt"
)

// UserTypeDoctor marks accounts that may see every booking.
const UserTypeDoctor = "Doctor"

// User is an account created at signup.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50" json:"username"`
	UserType string `gorm:"column:usertype;size:50" json:"usertype"`
	Email    string `gorm:"uniqueIndex;size:50" json:"email"`
	Password string `gorm:"size:1000" json:"-"` // Never send password in JSON
}

func (User) TableName() string { return "user" }

// IsDoctor reports whether the account has the see-all privilege.
func (u *User) IsDoctor() bool {
	return u.UserType == UserTypeDoctor
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
