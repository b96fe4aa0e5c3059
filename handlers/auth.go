package handlers

import (
	"time"

	"gamebattles-system/services"

	"github.com/gofiber/fiber/v2"
)

const sessionCookieMaxAge = 7 * 24 * time.Hour

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

func SetupAuthRoutes(app *fiber.App, auth *services.AuthService, session fiber.Handler) {
	h := &AuthHandler{auth: auth}

	api := app.Group("/api/auth")
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Get("/me", session, h.Me)
	api.Post("/logout", h.Logout)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	user, token, err := h.auth.Register(req)
	if err != nil {
		return domainError(c, err)
	}
	setSessionCookie(c, token)
	return c.JSON(fiber.Map{"user": user.Sanitize(), "token": token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	user, token, err := h.auth.Login(req)
	if err != nil {
		return domainError(c, err)
	}
	setSessionCookie(c, token)
	return c.JSON(fiber.Map{"user": user.Sanitize(), "token": token})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.auth.GetUser(currentUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"user": user.Sanitize()})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(sessionCookieMaxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
