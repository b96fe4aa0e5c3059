package handlers

import (
	"time"

	"gamebattles-system/services"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler exposes the helpdesk bot.
type ChatHandler struct {
	chat *services.ChatService
}

func SetupChatRoutes(app *fiber.App, chat *services.ChatService, session fiber.Handler) {
	h := &ChatHandler{chat: chat}
	app.Post("/api/chat/message", session, h.Message)
}

func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil || body.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}
	return c.JSON(fiber.Map{
		"response":  h.chat.Reply(body.Message),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
