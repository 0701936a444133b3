package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"brainhub/backend/config"
	"brainhub/backend/services"
	"brainhub/backend/utils"
)

type AuthController struct {
	Learners *services.LearnerService
	Cfg      *config.Config
}

func NewAuthController(learners *services.LearnerService, cfg *config.Config) *AuthController {
	return &AuthController{Learners: learners, Cfg: cfg}
}

// Register creates a new account with its learner profile.
// POST /register {username, email, password} -> 201 {message, learner_id}
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid JSON format")
	}

	learnerID, err := ac.Learners.Register(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return utils.BadRequest(c, "All fields (username, password, email) are required")
		case errors.Is(err, services.ErrEmailExists):
			return utils.Conflict(c, "Email already exists")
		default:
			return utils.InternalServerError(c, "Failed to create learner due to: "+err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Learner registered successfully",
		"learner_id": learnerID,
	})
}

// Login authenticates by email and returns the full learner profile with a
// session token.
// POST /login {email, password} -> 200 {token, learner, progress, recommendations}
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid JSON format")
	}

	profile, err := ac.Learners.Authenticate(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return utils.BadRequest(c, "Email and password are required")
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, services.ErrLearnerNotFound):
			return utils.NotFound(c, "Learner not found")
		default:
			return utils.InternalServerError(c, "Could not query database")
		}
	}

	token, err := utils.GenerateJWTToken(profile.Learner.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token":           token,
		"learner":         profile.Learner,
		"progress":        profile.Progress,
		"recommendations": profile.Recommendations,
	})
}

// GetProfile returns the authenticated learner's profile.
// GET /profile -> 200 {learner, progress, recommendations}
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	learnerID, err := utils.ExtractLearnerIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	profile, err := ac.Learners.Profile(learnerID)
	if err != nil {
		if errors.Is(err, services.ErrLearnerNotFound) {
			return utils.NotFound(c, "Learner not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(profile)
}
