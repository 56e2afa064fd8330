// Package web holds the embedded HTML templates for the server-rendered
// pages and the helpers they use.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"time"

	"github.com/workout-generator-web/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates with the shared helper funcs.
func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(template.FuncMap{
			"formatDate": FormatDate,
			"jsonld":     JSONLD,
		}).ParseFS(templateFS, "templates/*.html"),
	)
}

// FormatDate renders a post date as a human-readable string, e.g.
// "January 15, 2025". Dates are parsed in the posts' own calendar-date layout
// so no timezone shifting can move them to the previous day.
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// JSONLD renders a structured-data payload as an embeddable script block.
func JSONLD(v any) template.HTML {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.HTML(`<script type="application/ld+json">` + string(data) + `</script>`)
}
