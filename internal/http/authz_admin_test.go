package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func loginAdmin(t *testing.T, ta *testApp, csrf string) string {
	t.Helper()
	resp := postForm(t, ta, "/login", url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	}, csrf)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on login, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie missing after login")
	}
	return sid
}

func TestAdminConsoleRequiresLogin(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, err := ta.App.Test(httptest.NewRequest("GET", "/admin/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect for anonymous admin access, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestLoginBadPasswordRejected(t *testing.T) {
	ta := newTestApp(t, nil)
	tok := csrfToken(t, ta)

	resp := postForm(t, ta, "/login", url.Values{
		"email":    {testAdminEmail},
		"password": {"wrongpass!"},
	}, tok)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	if sid := extractCookie(resp, "sid"); sid != "" {
		t.Fatal("no session cookie should be issued on failure")
	}
}

func TestLoginThenDashboard(t *testing.T) {
	ta := newTestApp(t, nil)
	tok := csrfToken(t, ta)
	sid := loginAdmin(t, ta, tok)

	req := httptest.NewRequest("GET", "/admin/?tab=inquiries", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := ta.App.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for authenticated dashboard, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Inquiries") {
		t.Fatal("expected the inquiries tab on the dashboard")
	}
}

func TestLogoutKillsAdminAccess(t *testing.T) {
	ta := newTestApp(t, nil)
	tok := csrfToken(t, ta)
	sid := loginAdmin(t, ta, tok)

	form := url.Values{"csrf": {tok}}
	req := httptest.NewRequest("POST", "/logout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if _, err := ta.App.Test(req); err != nil {
		t.Fatal(err)
	}

	reqAdmin := httptest.NewRequest("GET", "/admin/", nil)
	reqAdmin.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := ta.App.Test(reqAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after logout, got %d", resp.StatusCode)
	}
}

func adminForm(t *testing.T, ta *testApp, path string, form url.Values, csrf, sid string) *http.Response {
	t.Helper()
	form.Set("csrf", csrf)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrf})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := ta.App.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestAdminCreateListing(t *testing.T) {
	ta := newTestApp(t, nil)
	tok := csrfToken(t, ta)
	sid := loginAdmin(t, ta, tok)

	resp := adminForm(t, ta, "/admin/properties", url.Values{
		"title":       {"Commercial Space in Pokhara Lakeside"},
		"type":        {"Commercial"},
		"status":      {"For Rent"},
		"price":       {"120000"},
		"area":        {"2"},
		"province":    {"Gandaki"},
		"district":    {"Kaski"},
		"city":        {"Pokhara"},
		"description": {"Ground floor space facing the lake."},
		"contactName": {"Suman"},
		"isAvailable": {"on"},
	}, tok, sid)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after create, got %d", resp.StatusCode)
	}

	state, err := ta.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(state.Properties) != 4 {
		t.Fatalf("expected 4 listings after create, got %d", len(state.Properties))
	}
	created := state.Properties[3]
	if created.ID == "" || created.CreatedAt == 0 {
		t.Fatalf("server must assign id and timestamp: %+v", created)
	}
	if created.Title != "Commercial Space in Pokhara Lakeside" || !created.IsAvailable || created.IsFeatured {
		t.Fatalf("created listing mismatch: %+v", created)
	}
	// no image given, placeholder kicks in
	if len(created.Images) != 1 || !strings.Contains(created.Images[0], "placeholder") {
		t.Fatalf("expected placeholder image, got %v", created.Images)
	}
}

func TestAdminUpdateAndDeleteListing(t *testing.T) {
	ta := newTestApp(t, nil)
	tok := csrfToken(t, ta)
	sid := loginAdmin(t, ta, tok)

	resp := adminForm(t, ta, "/admin/properties", url.Values{
		"id":          {"3"},
		"createdAt":   {"1700000000000"},
		"title":       {"Cozy Room for Rent in Koteshwor"},
		"type":        {"Room"},
		"status":      {"For Rent"},
		"price":       {"9500"},
		"area":        {"0"},
		"province":    {"Bagmati"},
		"district":    {"Kathmandu"},
		"city":        {"Koteshwor"},
		"description": {"Single room, rent revised."},
		"isAvailable": {"on"},
	}, tok, sid)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after update, got %d", resp.StatusCode)
	}
	state, err := ta.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	var price int64
	for _, p := range state.Properties {
		if p.ID == "3" {
			price = p.Price
		}
	}
	if price != 9500 {
		t.Fatalf("expected updated price 9500, got %d", price)
	}

	respDel := adminForm(t, ta, "/admin/properties/3/delete", url.Values{}, tok, sid)
	if respDel.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after delete, got %d", respDel.StatusCode)
	}
	state, err = ta.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range state.Properties {
		if p.ID == "3" {
			t.Fatal("listing 3 should be gone")
		}
	}
}

func TestAdminSaveSettings(t *testing.T) {
	ta := newTestApp(t, nil)
	tok := csrfToken(t, ta)
	sid := loginAdmin(t, ta, tok)

	resp := adminForm(t, ta, "/admin/settings", url.Values{
		"homepageTitle":    {"Properties Across Nepal"},
		"homepageSubtitle": {"Land, houses and flats."},
		"aboutText":        {"About us."},
		"contactEmail":     {"hello@4aana.com.np"},
		"contactPhone":     {"+977 1 5550000"},
		"metaDescription":  {"Nepali real estate."},
	}, tok, sid)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after settings save, got %d", resp.StatusCode)
	}
	state, err := ta.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if state.Settings.HomepageTitle != "Properties Across Nepal" || state.Settings.ContactEmail != "hello@4aana.com.np" {
		t.Fatalf("settings not persisted: %+v", state.Settings)
	}
}
