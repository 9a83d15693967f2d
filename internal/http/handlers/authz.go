package handlers

import (
	applog "fouraana/internal/log"
	"fouraana/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AttachAdmin flags the request as admin when a live session cookie is
// present, so public templates can show the dashboard link.
func AttachAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth.IsAdmin(c.Cookies("sid")) {
			c.Locals("isAdmin", true)
		}
		return c.Next()
	}
}

// RequireAdmin gates the admin console behind a live session.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		if !auth.IsAdmin(sid) {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Redirect("/login")
		}
		c.Locals("isAdmin", true)
		return c.Next()
	}
}
