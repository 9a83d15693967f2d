// Package insight produces the short AI-written consultant blurb shown on
// the property detail page. It is read-only decoration: the store never
// consumes it, and any failure degrades to a fixed fallback string.
package insight

import (
	"context"
	"fmt"
	"strings"

	"fouraana/internal/domain"
)

// Fallback is shown whenever the generator is unconfigured or errors out.
const Fallback = "Our AI consultant is currently offline. Please check back later."

type Generator interface {
	Insights(ctx context.Context, p domain.Property) (string, error)
}

// Prompt builds the consultant prompt for p.
func Prompt(p domain.Property) string {
	var b strings.Builder
	b.WriteString("Act as an expert real estate consultant in Nepal. Analyze this property and provide a 3-sentence summary of its investment potential and living quality.\n")
	fmt.Fprintf(&b, "Property Title: %s\n", p.Title)
	fmt.Fprintf(&b, "Type: %s\n", p.Type)
	fmt.Fprintf(&b, "Price: NPR %d\n", p.Price)
	if p.AreaSqFt != nil {
		fmt.Fprintf(&b, "Area: %g Aana (%g sq.ft)\n", p.Area, *p.AreaSqFt)
	} else {
		fmt.Fprintf(&b, "Area: %g Aana\n", p.Area)
	}
	fmt.Fprintf(&b, "Location: %s, %s\n", p.Location.City, p.Location.District)
	fmt.Fprintf(&b, "Description: %s", p.Description)
	return b.String()
}

// WithFallback runs g and maps every failure (nil generator, error, blank
// output) to Fallback so callers always get something renderable.
func WithFallback(ctx context.Context, g Generator, p domain.Property) string {
	if g == nil {
		return Fallback
	}
	text, err := g.Insights(ctx, p)
	if err != nil || strings.TrimSpace(text) == "" {
		return Fallback
	}
	return text
}
