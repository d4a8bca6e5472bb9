// Package web embeds the HTML templates for the public site and the admin
// panel.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/amandhingra1/charzdev-ev/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every page and partial. Pages are addressed by file name,
// e.g. "home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"stars":  Stars,
		"rating": func(avg float64) string { return fmt.Sprintf("%.1f", avg) },
		"lines":  func(items []string) string { return strings.Join(items, "\n") },
	}
}

// Stars returns MaxRating booleans, true for each filled star.
func Stars(rating int) []bool {
	out := make([]bool, models.MaxRating)
	for i := range out {
		out[i] = i < rating
	}
	return out
}
