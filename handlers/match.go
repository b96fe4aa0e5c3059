package handlers

import (
	"gamebattles-system/models"
	"gamebattles-system/services"

	"github.com/gofiber/fiber/v2"
)

// MatchHandler exposes the match lifecycle over HTTP.
type MatchHandler struct {
	matches *services.MatchService
}

// SetupMatchRoutes registers the match endpoints. Reads are public; any
// operation that changes a match requires a session.
func SetupMatchRoutes(app *fiber.App, matches *services.MatchService, session fiber.Handler) {
	h := &MatchHandler{matches: matches}

	api := app.Group("/api/matches")
	api.Get("/open", h.GetOpenMatches)
	api.Get("/my-matches", session, h.GetMyMatches)
	api.Get("/", h.GetAllMatches)
	api.Get("/:id", h.GetMatch)

	api.Post("/", session, h.CreateMatch)
	api.Post("/:id/join", session, h.JoinMatch)
	api.Post("/:id/report", session, h.ReportResults)
}

func (h *MatchHandler) GetOpenMatches(c *fiber.Ctx) error {
	matches, err := h.matches.ListOpen()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}

func (h *MatchHandler) GetAllMatches(c *fiber.Ctx) error {
	matches, err := h.matches.ListAll()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}

func (h *MatchHandler) GetMyMatches(c *fiber.Ctx) error {
	matches, err := h.matches.ListForUser(currentUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}

func (h *MatchHandler) GetMatch(c *fiber.Ctx) error {
	match, err := h.matches.Get(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"match": match})
}

func (h *MatchHandler) CreateMatch(c *fiber.Ctx) error {
	var dto models.MatchCreateDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	match, err := h.matches.Create(currentUserID(c), dto)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"match": match})
}

func (h *MatchHandler) JoinMatch(c *fiber.Ctx) error {
	var body struct {
		TeamName string `json:"teamName"`
	}
	// An empty body is fine; the team name falls back to the profile.
	_ = c.BodyParser(&body)

	match, err := h.matches.Join(c.Params("id"), currentUserID(c), body.TeamName)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"match": match})
}

func (h *MatchHandler) ReportResults(c *fiber.Ctx) error {
	var body struct {
		MapResults []models.MapResultDTO `json:"mapResults"`
	}
	if err := c.BodyParser(&body); err != nil || body.MapResults == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid map results"})
	}
	match, err := h.matches.ReportResults(c.Params("id"), currentUserID(c), body.MapResults)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"match": match})
}
