package handlers

import (
	html "github.com/gofiber/template/html/v2"
)

// NewEngine builds the template engine with the helpers the pages rely on.
// Tests point dir at the same web/templates tree.
func NewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("dict", func(values ...any) map[string]any {
		m := map[string]any{}
		for i := 0; i+1 < len(values); i += 2 {
			if k, ok := values[i].(string); ok {
				m[k] = values[i+1]
			}
		}
		return m
	})
	return engine
}
