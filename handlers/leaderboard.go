package handlers

import (
	"gamebattles-system/services"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardHandler serves the ranked standings.
type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
}

func SetupLeaderboardRoutes(app *fiber.App, leaderboard *services.LeaderboardService) {
	h := &LeaderboardHandler{leaderboard: leaderboard}
	app.Get("/api/leaderboard", h.GetLeaderboard)
}

func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.leaderboard.Top()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}
