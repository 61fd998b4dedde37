// Package handler contains the route handlers of the web tier. Each handler
// validates input, attaches the session token to remote calls, branches on
// the remote status and picks a rendered view or redirect.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eanmble/internal/session"
	"eanmble/internal/view"
)

// Route names used for redirect resolution; the router registers them.
const (
	RouteHome     = "home"
	RouteLogin    = "login"
	RouteRegister = "register"
	RouteAdmin    = "admin"
	RouteUsers    = "users"
)

// newPage assembles the fields every template needs, draining pending
// flashes in the process.
func newPage(c echo.Context, sessions *session.Manager, title string) view.Page {
	page := view.Page{Title: title, Flashes: sessions.TakeFlashes(c)}
	if sess := session.FromContext(c); sess.Authenticated() {
		page.UserName = sess.UserName
		page.Admin = sess.Admin
	}
	return page
}

// redirectTo resolves a named route and issues a found redirect. Resolving by
// name keeps redirect targets real routes instead of raw strings.
func redirectTo(c echo.Context, name string) error {
	return c.Redirect(http.StatusFound, c.Echo().Reverse(name))
}

// requireToken redirects unauthenticated requests to the login page. It
// returns the session when a token is present, nil after the redirect was
// written. No remote call happens for a missing token.
func requireToken(c echo.Context, sessions *session.Manager) (*session.Session, error) {
	sess := session.FromContext(c)
	if sess.Authenticated() {
		return sess, nil
	}
	sessions.Flash(c, session.FlashInfo, "Please log in first")
	return nil, redirectTo(c, RouteLogin)
}
