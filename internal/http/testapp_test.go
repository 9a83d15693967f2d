package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"fouraana/internal/http/handlers"
	"fouraana/internal/insight"
	"fouraana/internal/services"
	"fouraana/internal/storage"
	"fouraana/internal/store"
)

const (
	testAdminEmail    = "sumanbasnet2030@gmail.com"
	testAdminPassword = "sum@n2030"
)

type testApp struct {
	App   *fiber.App
	Store *store.Store
	Auth  *services.AuthService
}

// newTestApp wires the full route table against an in-memory backend so each
// test starts from the seeded demo document.
func newTestApp(t *testing.T, gen insight.Generator) *testApp {
	t.Helper()

	st := store.New(storage.NewMemory())
	if _, err := st.Load(); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	authSvc := services.NewAuthService(testAdminEmail, testAdminPassword)
	authSvc.CheckDelay = 0
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := handlers.NewEngine("../../web/templates")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(handlers.AttachAdmin(authSvc))
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(st, authSvc, gen)

	app.Get("/", deps.PageHandler.Home)
	app.Get("/listings", deps.ListingHandler.List)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/contact", deps.PageHandler.Contact)
	app.Get("/property/:id", deps.PropertyHandler.Detail)
	app.Post("/inquiries", deps.InquiryHandler.Submit)
	app.Get("/favorites", deps.FavoriteHandler.List)
	app.Post("/favorites/toggle", deps.FavoriteHandler.Toggle)

	api := app.Group("/api/v1")
	api.Get("/insights/:id", deps.InsightHandler.Get)

	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/properties/new", deps.AdminHandler.NewForm)
	admin.Get("/properties/:id/edit", deps.AdminHandler.EditForm)
	admin.Post("/properties", deps.AdminHandler.SaveProperty)
	admin.Post("/properties/:id/delete", deps.AdminHandler.DeleteProperty)
	admin.Post("/settings", deps.AdminHandler.SaveSettings)

	return &testApp{App: app, Store: st, Auth: authSvc}
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken fetches any page to obtain a CSRF cookie for form posts.
func csrfToken(t *testing.T, ta *testApp) string {
	t.Helper()
	resp, err := ta.App.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("fetch csrf: %v", err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf cookie missing")
	}
	return tok
}
