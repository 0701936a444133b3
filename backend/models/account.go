package models

import "gorm.io/gorm"

// Account holds the login identity. The pedagogical profile lives in Learner.
type Account struct {
	gorm.Model
	Username     string `gorm:"not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
}
