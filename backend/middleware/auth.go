package middleware

import (
	"github.com/gofiber/fiber/v2"

	"brainhub/backend/config"
	"brainhub/backend/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractLearnerIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
