package handlers

import (
	"errors"
	"log"

	"gamebattles-system/models"

	"github.com/gofiber/fiber/v2"
)

// domainError maps service errors onto HTTP responses. Unknown errors are
// logged and hidden behind a generic 500.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrMatchNotOpen),
		errors.Is(err, models.ErrMatchFull),
		errors.Is(err, models.ErrMatchNotInProgress),
		errors.Is(err, models.ErrAlreadyJoined),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrMatchNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrNotParticipant):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("❌ Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
}

// currentUserID pulls the authenticated user id set by the session
// middleware.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
