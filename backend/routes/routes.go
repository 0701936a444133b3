package routes

import (
	"github.com/gofiber/fiber/v2"

	"brainhub/backend/config"
	"brainhub/backend/controllers"
	"brainhub/backend/middleware"
	"brainhub/backend/repository"
	"brainhub/backend/services"
)

func SetupRoutes(app *fiber.App, store repository.Store, cfg *config.Config) {
	learnerService := services.NewLearnerService(store)
	enrollmentService := services.NewEnrollmentService(store)

	// Auth routes
	authController := controllers.NewAuthController(learnerService, cfg)
	app.Post("/register", authController.Register)
	app.Post("/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)
	app.Get("/profile", authMiddleware, authController.GetProfile)

	// Catalog routes
	coursesController := controllers.NewCoursesController(store, cfg)
	app.Get("/courses", coursesController.ListCourses)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(enrollmentService, cfg)
	app.Post("/add_course", enrollmentController.AddCourse)
	app.Post("/delete_course", enrollmentController.DeleteCourse)
}
