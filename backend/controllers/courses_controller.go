package controllers

import (
	"github.com/gofiber/fiber/v2"

	"brainhub/backend/config"
	"brainhub/backend/repository"
	"brainhub/backend/utils"
)

type CoursesController struct {
	Store repository.Store
	Cfg   *config.Config
}

func NewCoursesController(store repository.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: store, Cfg: cfg}
}

// ListCourses returns every course in the catalog, unfiltered.
// GET /courses -> 200 {courses: [...]}
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Store.Courses().All()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	coursesData := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		coursesData = append(coursesData, fiber.Map{
			"id":                course.ID,
			"title":             course.Title,
			"description":       course.Description,
			"niveau_difficulte": course.NiveauDifficulte,
			"date_creation":     course.CreatedAt,
			"image":             course.Image,
		})
	}

	return c.JSON(fiber.Map{
		"courses": coursesData,
	})
}
