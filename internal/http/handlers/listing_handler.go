package handlers

import (
	"strings"

	applog "fouraana/internal/log"
	"fouraana/internal/query"
	"fouraana/internal/services"
	"fouraana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	Listings *services.ListingService
}

// List renders the listings page filtered by q, type, status, minPrice,
// maxPrice and district query params. An empty result set renders the
// "no matching results" state, not an error.
func (h *ListingHandler) List(c *fiber.Ctx) error {
	f := query.Filter{}

	if rawQ := strings.TrimSpace(c.Query("q")); rawQ != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return badFilter(c, "Enter a valid keyword (letters/numbers only)")
		}
		f.Query = q
	}
	typ, ok := validate.PropertyType(c.Query("type"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "type"})
		return badFilter(c, "Invalid category")
	}
	f.Type = typ
	status, ok := validate.PropertyStatus(c.Query("status"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "status"})
		return badFilter(c, "Invalid status")
	}
	f.Status = status
	minP, ok := validate.OptPrice(c.Query("minPrice"))
	if !ok {
		return badFilter(c, "Invalid minimum price")
	}
	f.MinPrice = minP
	maxP, ok := validate.OptPrice(c.Query("maxPrice"))
	if !ok {
		return badFilter(c, "Invalid maximum price")
	}
	f.MaxPrice = maxP
	f.District = strings.TrimSpace(c.Query("district"))

	props, err := h.Listings.Search(f)
	if err != nil {
		return renderLoadError(c, "listings.load.fail", err)
	}
	_, favs, err := h.Listings.Favorites()
	if err != nil {
		return renderLoadError(c, "listings.load.fail", err)
	}

	return render(c, "listings", fiber.Map{
		"Properties": props,
		"Count":      len(props),
		"Favorites":  favs,
		"Filter":     f,
		"Types":      typeOptions(),
		"Statuses":   statusOptions(),
	})
}

func badFilter(c *fiber.Ctx, msg string) error {
	c.Status(fiber.StatusBadRequest)
	return render(c, "listings", fiber.Map{
		"Properties": []any{},
		"Count":      0,
		"Favorites":  map[string]bool{},
		"Filter":     query.Filter{},
		"Types":      typeOptions(),
		"Statuses":   statusOptions(),
		"Err":        msg,
	})
}
