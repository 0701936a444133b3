package services

import "errors"

// Sentinel errors returned by the services. Controllers map these onto HTTP
// statuses; anything else that comes back is a storage fault and surfaces
// as a 500.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLearnerNotFound    = errors.New("learner not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyEnrolled    = errors.New("learner is already enrolled in this course")
	ErrProgressNotFound   = errors.New("progress record not found")
)
