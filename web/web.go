// Package web holds the server-rendered HTML templates.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"restaurant-web/models"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page. Each page is registered under its file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"cents": func(c int64) string { return fmt.Sprintf("%.2f", models.CentsToPrice(c)) },
	}).ParseFS(files, "templates/*.html")
}
