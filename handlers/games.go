package handlers

import (
	"gamebattles-system/models"

	"github.com/gofiber/fiber/v2"
)

// SetupGameRoutes registers the static game catalog endpoint used by the
// match-creation form.
func SetupGameRoutes(app *fiber.App) {
	app.Get("/api/games", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"titles":   models.GameTitles,
			"modes":    models.GameModes,
			"mapPools": models.MapPools,
		})
	})
}
