package handlers

import (
	"fouraana/internal/services"
	"fouraana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	Listings *services.ListingService
}

func (h *PropertyHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(404)
		return render(c, "notfound", fiber.Map{"Message": "Property not found."})
	}
	p, found, err := h.Listings.Get(id)
	if err != nil {
		return renderLoadError(c, "property.load.fail", err)
	}
	if !found {
		c.Status(404)
		return render(c, "notfound", fiber.Map{"Message": "Property not found."})
	}
	_, favs, err := h.Listings.Favorites()
	if err != nil {
		return renderLoadError(c, "property.load.fail", err)
	}
	return render(c, "detail", fiber.Map{
		"Property":   p,
		"IsFavorite": favs[p.ID],
		"Sent":       c.Query("sent") == "1",
	})
}
