package handlers

import (
	"fouraana/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	Listings *services.ListingService
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	settings, err := h.Listings.Settings()
	if err != nil {
		return renderLoadError(c, "home.load.fail", err)
	}
	featured, err := h.Listings.Featured()
	if err != nil {
		return renderLoadError(c, "home.load.fail", err)
	}
	_, favs, err := h.Listings.Favorites()
	if err != nil {
		return renderLoadError(c, "home.load.fail", err)
	}
	return render(c, "home", fiber.Map{
		"Settings":  settings,
		"Featured":  featured,
		"Favorites": favs,
	})
}

func (h *PageHandler) About(c *fiber.Ctx) error {
	settings, err := h.Listings.Settings()
	if err != nil {
		return renderLoadError(c, "about.load.fail", err)
	}
	return render(c, "about", fiber.Map{"Settings": settings})
}

func (h *PageHandler) Contact(c *fiber.Ctx) error {
	settings, err := h.Listings.Settings()
	if err != nil {
		return renderLoadError(c, "contact.load.fail", err)
	}
	return render(c, "contact", fiber.Map{"Settings": settings})
}

// ToggleTheme flips the light/dark preference cookie. The preference lives
// outside the persisted app state on purpose.
func (h *PageHandler) ToggleTheme(c *fiber.Ctx) error {
	theme := "dark"
	if c.Cookies("theme") == "dark" {
		theme = "light"
	}
	c.Cookie(&fiber.Cookie{
		Name:     "theme",
		Value:    theme,
		Path:     "/",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}
	return c.Redirect(back)
}
