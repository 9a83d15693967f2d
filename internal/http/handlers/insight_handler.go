package handlers

import (
	"fouraana/internal/insight"
	applog "fouraana/internal/log"
	"fouraana/internal/services"
	"fouraana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// InsightHandler serves the detail page's AI blurb as JSON so the page can
// load it after render. Failures carry the fallback text with a 200; the
// client never needs a distinct error path.
type InsightHandler struct {
	Listings *services.ListingService
	Gen      insight.Generator
}

func (h *InsightHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, found, err := h.Listings.Get(id)
	if err != nil {
		applog.Error(c, "insight.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load property"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	text := insight.WithFallback(c.UserContext(), h.Gen, p)
	return c.JSON(fiber.Map{"insight": text})
}
