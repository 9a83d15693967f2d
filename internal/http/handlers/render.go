package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "fouraana/internal/log"
	"fouraana/internal/store"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if isAdmin, ok := c.Locals("isAdmin").(bool); ok && isAdmin {
		data["IsAdmin"] = true
	}
	if theme := c.Cookies("theme"); theme == "dark" {
		data["DarkTheme"] = true
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// renderLoadError maps a failed state load onto the generic "your data could
// not be loaded" page. A corrupt document is logged at error level; there is
// no recovery path for it.
func renderLoadError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	msg := "Something went wrong. Please try again."
	if errors.Is(err, store.ErrCorrupt) {
		msg = "Your data could not be loaded."
	}
	c.Status(fiber.StatusInternalServerError)
	return render(c, "notfound", fiber.Map{"Message": msg})
}
