package models

import "gorm.io/gorm"

// Course rows are read-only here; authoring happens elsewhere.
type Course struct {
	gorm.Model
	Title            string
	Description      string
	NiveauDifficulte string // beginner, intermediate, advanced
	Image            string
}
