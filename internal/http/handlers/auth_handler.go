package handlers

import (
	applog "fouraana/internal/log"
	"fouraana/internal/services"
	"fouraana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if h.Auth.IsAdmin(c.Cookies("sid")) {
		return c.Redirect("/admin")
	}
	return render(c, "login", fiber.Map{})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email, okE := validate.Email(c.FormValue("email"))
	password := c.FormValue("password")
	if !okE || !validate.Password(password) {
		applog.Security(c, "login.fail", map[string]any{"email": email})
		c.Status(fiber.StatusUnauthorized)
		return render(c, "login", fiber.Map{"Err": "The email or password you entered is incorrect."})
	}

	sid, err := h.Auth.Login(email, password)
	if err != nil {
		applog.Security(c, "login.fail", map[string]any{"email": email})
		c.Status(fiber.StatusUnauthorized)
		return render(c, "login", fiber.Map{"Err": "The email or password you entered is incorrect."})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false, // set true behind HTTPS
	})
	applog.Audit(c, "login.success", nil)
	return c.Redirect("/admin")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		h.Auth.Logout(sid)
	}
	c.ClearCookie("sid")
	applog.Audit(c, "logout", nil)
	return c.Redirect("/")
}
