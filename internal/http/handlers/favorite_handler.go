package handlers

import (
	applog "fouraana/internal/log"
	"fouraana/internal/services"
	"fouraana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Listings *services.ListingService
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	props, favs, err := h.Listings.Favorites()
	if err != nil {
		return renderLoadError(c, "favorites.load.fail", err)
	}
	return render(c, "favorites", fiber.Map{
		"Properties": props,
		"Favorites":  favs,
		"Count":      len(props),
	})
}

// Toggle flips membership of the posted listing id in the favorites set and
// sends the visitor back where they came from.
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("propertyId"))
	if !ok {
		return c.Status(400).SendString("missing propertyId")
	}
	favs, err := h.Listings.ToggleFavorite(pid)
	if err != nil {
		applog.Error(c, "favorite.toggle.fail", err, map[string]any{"property": pid})
		return c.Status(500).SendString("Could not update favorites")
	}
	applog.Info(c, "favorite.toggle", map[string]any{"property": pid, "count": len(favs)})
	back := c.Get("Referer")
	if back == "" {
		back = "/favorites"
	}
	return c.Redirect(back)
}
