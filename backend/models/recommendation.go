package models

import "gorm.io/gorm"

// Recommendation rows are produced by the recommendation pipeline outside
// this service; we only ever read them back on login and profile fetches.
// CreatedAt doubles as the recommendation date.
type Recommendation struct {
	gorm.Model
	LearnerID uint    `gorm:"index;not null"`
	Learner   Learner `gorm:"constraint:OnDelete:CASCADE"`
	Type      string
	Content   string
}
