package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"eanmble/internal/errors"
	"eanmble/internal/forms"
	"eanmble/internal/ghastly"
	"eanmble/internal/service"
	"eanmble/internal/session"
	"eanmble/internal/view"
)

// AuthHandler handles login, logout and registration.
type AuthHandler struct {
	api      ghastly.API
	auth     service.AuthService
	users    service.UserService
	sessions *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(api ghastly.API, auth service.AuthService, users service.UserService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{api: api, auth: auth, users: users, sessions: sessions}
}

type loginPage struct {
	view.Page
	Form   forms.LoginForm
	Errors map[string]string
}

type registerPage struct {
	view.Page
	Form   forms.RegisterForm
	Errors map[string]string
}

// LoginPage renders the empty login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{Page: newPage(c, h.sessions, "Log in")})
}

// Login authenticates against the remote API and establishes the session.
// Admins land on the approval page, everyone else on the predictions list.
func (h *AuthHandler) Login(c echo.Context) error {
	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "login.html", loginPage{
			Page:   newPage(c, h.sessions, "Log in"),
			Form:   form,
			Errors: forms.Errors(err),
		})
	}

	sess := session.FromContext(c)
	admin, err := h.auth.Login(c.Request().Context(), sess, form.UserName, form.Password)
	if err != nil {
		if stderrors.Is(err, ghastly.ErrUnavailable) {
			h.sessions.Flash(c, session.FlashWarning, "Problem connecting to Ghastly API")
			return c.Render(http.StatusServiceUnavailable, "unavailable.html",
				staticPage{Page: newPage(c, h.sessions, "Try again later")})
		}
		var statusErr *ghastly.StatusError
		if stderrors.As(err, &statusErr) {
			h.sessions.Flash(c, session.FlashDanger, fmt.Sprintf("%d %s", statusErr.Code, statusErr.Body))
			return c.Render(http.StatusOK, "login.html", loginPage{
				Page: newPage(c, h.sessions, "Log in"),
				Form: form,
			})
		}
		return err
	}

	if admin {
		return redirectTo(c, RouteAdmin)
	}
	return redirectTo(c, RouteUsers)
}

// Logout disowns the in-session token and returns to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), session.FromContext(c)); err != nil {
		c.Logger().Warnf("logout: %v", err)
	}
	return redirectTo(c, RouteHome)
}

// RegisterPage renders the empty registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", registerPage{Page: newPage(c, h.sessions, "Sign up")})
}

// Register validates the sign-up form and posts it to the remote API. A 201
// redirects to login; a 400 re-renders the form with its values preserved.
func (h *AuthHandler) Register(c echo.Context) error {
	var form forms.RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "register.html", registerPage{
			Page:   newPage(c, h.sessions, "Sign up"),
			Form:   form,
			Errors: forms.Errors(err),
		})
	}

	err := h.api.Register(c.Request().Context(), ghastly.Registration{
		Name:     form.Name,
		UserName: form.UserName,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if stderrors.Is(err, ghastly.ErrUnavailable) {
			h.sessions.Flash(c, session.FlashWarning, "Problem connecting to Ghastly API")
			return c.Render(http.StatusServiceUnavailable, "unavailable.html",
				staticPage{Page: newPage(c, h.sessions, "Try again later")})
		}
		var statusErr *ghastly.StatusError
		if stderrors.As(err, &statusErr) && statusErr.Code == http.StatusBadRequest {
			h.sessions.Flash(c, session.FlashDanger, "Bad request")
		} else if stderrors.As(err, &statusErr) {
			h.sessions.Flash(c, session.FlashDanger, fmt.Sprintf("Unknown problem %d", statusErr.Code))
		} else {
			return err
		}
		return c.Render(http.StatusOK, "register.html", registerPage{
			Page: newPage(c, h.sessions, "Sign up"),
			Form: form,
		})
	}

	h.mirrorUser(c, form)
	h.sessions.Flash(c, session.FlashSuccess, "Account Created Successfully")
	return redirectTo(c, RouteLogin)
}

// mirrorUser keeps the local users relation in step with the remote account.
// Mirroring is bookkeeping only, so its failure never blocks registration.
func (h *AuthHandler) mirrorUser(c echo.Context, form forms.RegisterForm) {
	_, err := h.users.CreateUser(c.Request().Context(), form.Name, form.UserName, form.Email, form.Password)
	if err != nil && !stderrors.Is(err, errors.ErrDuplicateEmail) {
		c.Logger().Warnf("mirror user %q: %v", form.UserName, err)
	}
}
