package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler keeps framework-level failures (unknown routes, wrong HTTP
// methods) in the same {"error": ...} envelope the controllers use. Wire it
// into fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	if code == fiber.StatusMethodNotAllowed {
		message = "Invalid request method"
	}

	return Error(c, code, message)
}

// Error sends the flat {"error": ...} envelope every failure path uses.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 Not Found error.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 Conflict error.
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 Internal Server Error.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
