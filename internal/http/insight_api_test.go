package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fouraana/internal/domain"
	"fouraana/internal/insight"
)

type cannedGen struct{ text string }

func (g cannedGen) Insights(_ context.Context, _ domain.Property) (string, error) {
	return g.text, nil
}

func insightBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode insight response: %v", err)
	}
	return body
}

func TestInsightFallbackWhenUnconfigured(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, err := ta.App.Test(httptest.NewRequest("GET", "/api/v1/insights/1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with fallback text, got %d", resp.StatusCode)
	}
	if got := insightBody(t, resp)["insight"]; got != insight.Fallback {
		t.Fatalf("expected fallback text, got %q", got)
	}
}

func TestInsightUsesGenerator(t *testing.T) {
	ta := newTestApp(t, cannedGen{text: "Strong appreciation prospects near the ring road."})
	resp, err := ta.App.Test(httptest.NewRequest("GET", "/api/v1/insights/1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := insightBody(t, resp)["insight"]; got != "Strong appreciation prospects near the ring road." {
		t.Fatalf("unexpected insight %q", got)
	}
}

func TestInsightUnknownListing(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, err := ta.App.Test(httptest.NewRequest("GET", "/api/v1/insights/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown listing, got %d", resp.StatusCode)
	}
}
