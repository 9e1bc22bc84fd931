// Package web embeds the dashboard HTML templates for serving from the
// Go binary and provides the page handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates parses the embedded page templates. The result is handed to
// gin via SetHTMLTemplate at router construction.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}
