package middleware

import (
	"strings"

	"gamebattles-system/services"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware authenticates the request from the session token and
// attaches the user id to the request context. The token is read from the
// httpOnly cookie first, then from an Authorization bearer header.
func SessionMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			header := c.Get("Authorization")
			token = strings.TrimPrefix(header, "Bearer ")
			if token == header {
				token = ""
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		userID, err := auth.VerifyToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
