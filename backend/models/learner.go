package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultNiveau = "beginner"

// Learner is created exactly once per Account, at registration.
// CreatedAt doubles as the inscription date.
type Learner struct {
	gorm.Model
	AccountID   uint    `gorm:"uniqueIndex;not null"`
	Account     Account `gorm:"constraint:OnDelete:CASCADE"`
	Niveau      string  `gorm:"default:beginner"`
	Preferences datatypes.JSONMap
}
