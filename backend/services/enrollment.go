package services

import (
	"errors"

	"brainhub/backend/models"
	"brainhub/backend/repository"
)

// EnrollmentService manages the Progress rows linking learners to courses.
type EnrollmentService struct {
	store repository.Store
}

func NewEnrollmentService(store repository.Store) *EnrollmentService {
	return &EnrollmentService{store: store}
}

// Enroll creates a fresh Progress row for the pair. The existence checks run
// learner first, then course. The already-enrolled precheck is best effort:
// two concurrent enrolls can both pass it, and then the composite unique
// index on (learner_id, course_id) rejects the loser, which we report as the
// same conflict.
func (s *EnrollmentService) Enroll(learnerID, courseID uint) (uint, error) {
	if learnerID == 0 || courseID == 0 {
		return 0, ErrMissingFields
	}

	if _, err := s.store.Learners().FindByID(learnerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrLearnerNotFound
		}
		return 0, err
	}
	if _, err := s.store.Courses().FindByID(courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrCourseNotFound
		}
		return 0, err
	}

	enrolled, err := s.store.Progress().PairExists(learnerID, courseID)
	if err != nil {
		return 0, err
	}
	if enrolled {
		return 0, ErrAlreadyEnrolled
	}

	progress := &models.Progress{
		LearnerID:          learnerID,
		CourseID:           courseID,
		ProgressPercentage: 0,
		Status:             models.StatusInProgress,
	}
	if err := s.store.Progress().Create(progress); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrAlreadyEnrolled
		}
		return 0, err
	}

	return progress.ID, nil
}

// Unenroll removes the Progress row for the pair, with the same learner and
// course existence checks as Enroll.
func (s *EnrollmentService) Unenroll(learnerID, courseID uint) error {
	if learnerID == 0 || courseID == 0 {
		return ErrMissingFields
	}

	if _, err := s.store.Learners().FindByID(learnerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLearnerNotFound
		}
		return err
	}
	if _, err := s.store.Courses().FindByID(courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	progress, err := s.store.Progress().FindByPair(learnerID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgressNotFound
		}
		return err
	}

	return s.store.Progress().Delete(progress)
}
