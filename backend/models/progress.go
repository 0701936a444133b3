package models

import "time"

const StatusInProgress = "in progress"

// Progress links a Learner to a Course. The composite unique index is the
// authority on the one-row-per-pair invariant; the enrollment precheck only
// exists to give a clean error in the common case.
//
// No soft delete here: unenrolling must really free the (learner, course)
// pair or the unique index would block re-enrollment.
type Progress struct {
	ID                 uint    `gorm:"primarykey"`
	LearnerID          uint    `gorm:"uniqueIndex:idx_learner_course;not null"`
	Learner            Learner `gorm:"constraint:OnDelete:CASCADE"`
	CourseID           uint    `gorm:"uniqueIndex:idx_learner_course;not null"`
	Course             Course  `gorm:"constraint:OnDelete:CASCADE"`
	ProgressPercentage int     `gorm:"default:0"`
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
