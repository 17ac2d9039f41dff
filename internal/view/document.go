package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var documentTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// WritePage renders the full HTML document for a page snapshot.
func WritePage(w io.Writer, snap Snapshot) error {
	return documentTemplate.ExecuteTemplate(w, "index.html", snap)
}
