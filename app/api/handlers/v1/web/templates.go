// Package web serves the two step reveal flow. Loading the page never touches
// the note; only the reveal action posted by the page consumes it.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

const (
	pageNote    = "note.html"
	pageGone    = "gone.html"
	pageMissing = "missing.html"
)

// Templates parses the pages rendered by this package
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
