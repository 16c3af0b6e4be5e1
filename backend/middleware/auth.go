package middleware

import (
	"mindwell/backend/config"
	"mindwell/backend/utils"

	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "No token, authorization denied")
		}
		return c.Next()
	}
}
