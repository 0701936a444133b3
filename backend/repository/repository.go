// Package repository defines the persistence boundary. Services talk to the
// Store interface and never see gorm; storage failures surface as the two
// sentinel errors below or as an opaque wrapped error.
package repository

import (
	"errors"

	"brainhub/backend/models"
)

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")
)

type AccountRepository interface {
	Create(account *models.Account) error
	FindByEmail(email string) (*models.Account, error)
	EmailExists(email string) (bool, error)
}

type LearnerRepository interface {
	Create(learner *models.Learner) error
	FindByID(id uint) (*models.Learner, error)
	FindByAccountID(accountID uint) (*models.Learner, error)
}

type CourseRepository interface {
	FindByID(id uint) (*models.Course, error)
	All() ([]models.Course, error)
}

type ProgressRepository interface {
	Create(progress *models.Progress) error
	FindByPair(learnerID, courseID uint) (*models.Progress, error)
	ListByLearner(learnerID uint) ([]models.Progress, error)
	PairExists(learnerID, courseID uint) (bool, error)
	Delete(progress *models.Progress) error
}

type RecommendationRepository interface {
	ListByLearner(learnerID uint) ([]models.Recommendation, error)
}

// Store aggregates the per-entity repositories. Transaction runs fn against a
// Store bound to a single database transaction; returning an error rolls the
// whole transaction back.
type Store interface {
	Accounts() AccountRepository
	Learners() LearnerRepository
	Courses() CourseRepository
	Progress() ProgressRepository
	Recommendations() RecommendationRepository
	Transaction(fn func(Store) error) error
}
