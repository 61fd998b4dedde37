// Package view renders the HTML pages of the web tier. Templates are embedded
// in the binary and parsed once at startup.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"eanmble/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page carries the fields every template expects. Handlers embed it in their
// page-specific data.
type Page struct {
	Title    string
	Flashes  []session.Flash
	UserName string
	Admin    bool
}

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
