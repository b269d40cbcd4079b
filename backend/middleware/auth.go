package middleware

import (
	"github.com/gofiber/fiber/v2"

	"youedu/backend/config"
	"youedu/backend/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := utils.ExtractEmailFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals("email", email)
		return c.Next()
	}
}
