package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eanmble/internal/session"
	"eanmble/internal/view"
)

// PageHandler serves the static informational pages. No authentication, no
// remote calls.
type PageHandler struct {
	sessions *session.Manager
}

// NewPageHandler creates a new page handler.
func NewPageHandler(sessions *session.Manager) *PageHandler {
	return &PageHandler{sessions: sessions}
}

type staticPage struct {
	view.Page
}

// Start sends the bare root to the landing page.
func (h *PageHandler) Start(c echo.Context) error {
	return redirectTo(c, RouteHome)
}

// Landing renders the landing page.
func (h *PageHandler) Landing(c echo.Context) error {
	return c.Render(http.StatusOK, "landing.html", staticPage{Page: newPage(c, h.sessions, "Welcome")})
}

// About renders the about page.
func (h *PageHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", staticPage{Page: newPage(c, h.sessions, "About")})
}

// Contact renders the contact page.
func (h *PageHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", staticPage{Page: newPage(c, h.sessions, "Contact")})
}
