package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"fouraana/internal/config"
	"fouraana/internal/http/handlers"
	"fouraana/internal/insight"
	applog "fouraana/internal/log"
	"fouraana/internal/services"
	"fouraana/internal/storage"
	"fouraana/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	kv, err := storage.OpenSQLite(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	st := store.New(kv)
	// First load seeds the demo document on a fresh database.
	if _, err := st.Load(); err != nil {
		log.Fatal(err)
	}

	authSvc := services.NewAuthService(cfg.AdminEmail, cfg.AdminPassword)
	authH := &handlers.AuthHandler{Auth: authSvc}

	var gen insight.Generator
	if cfg.AnthropicKey != "" {
		gen = insight.NewClaude(cfg.AnthropicKey, cfg.AnthropicModel)
	} else {
		log.Printf("[insight] ANTHROPIC_API_KEY unset; serving fallback text")
	}

	// Templates & app
	engine := handlers.NewEngine("./web/templates")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			msg := "Something went wrong. Please try again."
			if errors.Is(err, store.ErrCorrupt) {
				msg = "Your data could not be loaded."
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": msg,
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString(msg)
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(handlers.AttachAdmin(authSvc))
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(st, authSvc, gen)

	// Public pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/listings", limiter.New(limiter.Config{Max: 30, Expiration: time.Minute}), deps.ListingHandler.List)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/contact", deps.PageHandler.Contact)
	app.Post("/theme/toggle", deps.PageHandler.ToggleTheme)

	// Property pages
	app.Get("/property", func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This listing is no longer available"})
	})
	app.Get("/property/:id", deps.PropertyHandler.Detail)
	app.Post("/inquiries", deps.InquiryHandler.Submit)

	// Favorites
	app.Get("/favorites", deps.FavoriteHandler.List)
	app.Post("/favorites/toggle", deps.FavoriteHandler.Toggle)

	// API
	api := app.Group("/api/v1")
	insightLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|insight"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.insight.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Get("/insights/:id", insightLimiter, deps.InsightHandler.Get)

	// Admin auth (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Admin console
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/properties/new", deps.AdminHandler.NewForm)
	admin.Get("/properties/:id/edit", deps.AdminHandler.EditForm)
	admin.Post("/properties", deps.AdminHandler.SaveProperty)
	admin.Post("/properties/:id/delete", deps.AdminHandler.DeleteProperty)
	admin.Post("/settings", deps.AdminHandler.SaveSettings)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
