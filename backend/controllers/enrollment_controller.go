package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"brainhub/backend/config"
	"brainhub/backend/services"
	"brainhub/backend/utils"
)

type EnrollmentController struct {
	Enrollments *services.EnrollmentService
	Cfg         *config.Config
}

func NewEnrollmentController(enrollments *services.EnrollmentService, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments, Cfg: cfg}
}

type enrollmentInput struct {
	LearnerID uint `json:"learner_id"`
	CourseID  uint `json:"course_id"`
}

// AddCourse enrolls a learner into a course.
// POST /add_course {learner_id, course_id} -> 201 {message, progress_id}
func (ec *EnrollmentController) AddCourse(c *fiber.Ctx) error {
	var input enrollmentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid JSON format")
	}

	progressID, err := ec.Enrollments.Enroll(input.LearnerID, input.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return utils.BadRequest(c, "Learner ID and Course ID are required")
		case errors.Is(err, services.ErrLearnerNotFound):
			return utils.NotFound(c, "Learner not found")
		case errors.Is(err, services.ErrCourseNotFound):
			return utils.NotFound(c, "Course not found")
		case errors.Is(err, services.ErrAlreadyEnrolled):
			return utils.Conflict(c, "Learner is already enrolled in this course")
		default:
			return utils.InternalServerError(c, "Failed to add course due to a database error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Course successfully added to learner",
		"progress_id": progressID,
	})
}

// DeleteCourse removes a learner's enrollment.
// POST /delete_course {learner_id, course_id} -> 200 {message}
func (ec *EnrollmentController) DeleteCourse(c *fiber.Ctx) error {
	var input enrollmentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid JSON format")
	}

	if err := ec.Enrollments.Unenroll(input.LearnerID, input.CourseID); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return utils.BadRequest(c, "Learner ID and Course ID are required")
		case errors.Is(err, services.ErrLearnerNotFound):
			return utils.NotFound(c, "Learner not found")
		case errors.Is(err, services.ErrCourseNotFound):
			return utils.NotFound(c, "Course not found")
		case errors.Is(err, services.ErrProgressNotFound):
			return utils.NotFound(c, "Progress record not found for this learner and course")
		default:
			return utils.InternalServerError(c, "Failed to remove course due to a database error")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Course successfully removed from learner",
	})
}
