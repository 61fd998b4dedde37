package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"eanmble/internal/forms"
	"eanmble/internal/ghastly"
	"eanmble/internal/service"
	"eanmble/internal/session"
	"eanmble/internal/view"
)

// AdminHandler serves the prediction approval page and its actions.
type AdminHandler struct {
	api      ghastly.API
	auth     service.AuthService
	sessions *session.Manager
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(api ghastly.API, auth service.AuthService, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{api: api, auth: auth, sessions: sessions}
}

type adminPage struct {
	view.Page
	Predictions []ghastly.Prediction
	Summary     ghastly.Summary
	Filter      forms.AdminFilterForm
	Errors      map[string]string
}

// Admin fetches every prediction and renders the approval page with the
// approved subset folded into combined odds and comment.
func (h *AdminHandler) Admin(c echo.Context) error {
	sess, err := requireToken(c, h.sessions)
	if sess == nil {
		return err
	}

	filter := forms.AdminFilterForm{Date: c.QueryParam("date")}
	var filterErrors map[string]string
	if filter.Date != "" {
		if err := c.Validate(&filter); err != nil {
			filterErrors = forms.Errors(err)
		}
	}

	predictions, err := h.api.ListPredictions(c.Request().Context(), sess.Token)
	if err != nil {
		return h.handleListError(c, sess, err)
	}

	return c.Render(http.StatusOK, "admin.html", adminPage{
		Page:        newPage(c, h.sessions, "Admin"),
		Predictions: predictions,
		Summary:     ghastly.Summarize(predictions),
		Filter:      filter,
		Errors:      filterErrors,
	})
}

// Approve marks the prediction named by the pred_id query parameter as
// approved, attaching the confirmation comment. It always returns to the
// admin page; only a remote 201 counts as success.
func (h *AdminHandler) Approve(c echo.Context) error {
	sess, err := requireToken(c, h.sessions)
	if sess == nil {
		return err
	}

	var form forms.ConfirmationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		h.sessions.Flash(c, session.FlashDanger, "Invalid confirmation")
		return redirectTo(c, RouteAdmin)
	}

	predID := c.QueryParam("pred_id")
	if predID == "" {
		// A client error, not a crash: the approval form always carries pred_id.
		h.sessions.Flash(c, session.FlashDanger, "Missing prediction id")
		return redirectTo(c, RouteAdmin)
	}

	if err := h.api.UpdatePrediction(c.Request().Context(), sess.Token, predID, form.ConfirmationText, true); err != nil {
		h.sessions.Flash(c, session.FlashDanger, "Prediction not approved")
	} else {
		h.sessions.Flash(c, session.FlashSuccess, "Prediction approved")
	}
	return redirectTo(c, RouteAdmin)
}

// Invalidate unconditionally clears a prediction's approval and comment,
// then returns to the admin page with a status-dependent notice.
func (h *AdminHandler) Invalidate(c echo.Context) error {
	predID := c.Param("pred_id")
	var token string
	if sess := session.FromContext(c); sess.Authenticated() {
		token = sess.Token
	}

	if err := h.api.UpdatePrediction(c.Request().Context(), token, predID, "", false); err != nil {
		h.sessions.Flash(c, session.FlashDanger, "Prediction still valid")
	} else {
		h.sessions.Flash(c, session.FlashSuccess, "Prediction unapproved")
	}
	return redirectTo(c, RouteAdmin)
}

// handleListError maps a predictions fetch failure to the right exit: a 401
// clears the session, transport trouble degrades to the retry page, anything
// else reports the status. All status paths end at the login page.
func (h *AdminHandler) handleListError(c echo.Context, sess *session.Session, err error) error {
	if stderrors.Is(err, ghastly.ErrUnavailable) {
		h.sessions.Flash(c, session.FlashWarning, "Problem connecting to Ghastly API")
		return c.Render(http.StatusServiceUnavailable, "unavailable.html",
			staticPage{Page: newPage(c, h.sessions, "Try again later")})
	}

	var statusErr *ghastly.StatusError
	if stderrors.As(err, &statusErr) {
		if logoutErr := h.auth.Logout(c.Request().Context(), sess); logoutErr != nil {
			c.Logger().Warnf("clear session: %v", logoutErr)
		}
		if statusErr.Code == http.StatusUnauthorized {
			h.sessions.Flash(c, session.FlashInfo, "Session expired please login again")
		} else {
			h.sessions.Flash(c, session.FlashDanger, fmt.Sprintf("Problem fetching predictions, %d", statusErr.Code))
		}
		return redirectTo(c, RouteLogin)
	}
	return err
}
