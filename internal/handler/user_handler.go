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

// UserHandler serves the predictions list ordinary subscribers see.
type UserHandler struct {
	api      ghastly.API
	auth     service.AuthService
	sessions *session.Manager
}

// NewUserHandler creates a new user handler.
func NewUserHandler(api ghastly.API, auth service.AuthService, sessions *session.Manager) *UserHandler {
	return &UserHandler{api: api, auth: auth, sessions: sessions}
}

type userPage struct {
	view.Page
	Predictions []ghastly.Prediction
	Filter      forms.FilterForm
	Errors      map[string]string
}

// Predictions renders the full prediction list. No approved/pending split
// here; that view belongs to admins.
func (h *UserHandler) Predictions(c echo.Context) error {
	sess, err := requireToken(c, h.sessions)
	if sess == nil {
		return err
	}

	filter := forms.FilterForm{
		FirstDate:  c.QueryParam("first_date"),
		SecondDate: c.QueryParam("second_date"),
	}
	var filterErrors map[string]string
	if filter.FirstDate != "" || filter.SecondDate != "" {
		if err := c.Validate(&filter); err != nil {
			filterErrors = forms.Errors(err)
		}
	}

	predictions, err := h.api.ListPredictions(c.Request().Context(), sess.Token)
	if err != nil {
		if stderrors.Is(err, ghastly.ErrUnavailable) {
			h.sessions.Flash(c, session.FlashWarning, "Problem connecting to Ghastly API")
			return c.Render(http.StatusServiceUnavailable, "unavailable.html",
				staticPage{Page: newPage(c, h.sessions, "Try again later")})
		}
		var statusErr *ghastly.StatusError
		if stderrors.As(err, &statusErr) {
			if statusErr.Code == http.StatusUnauthorized {
				if logoutErr := h.auth.Logout(c.Request().Context(), sess); logoutErr != nil {
					c.Logger().Warnf("clear session: %v", logoutErr)
				}
				h.sessions.Flash(c, session.FlashInfo,
					fmt.Sprintf("Session expired please login again. %s", statusErr.Body))
			} else {
				h.sessions.Flash(c, session.FlashDanger,
					fmt.Sprintf("Problem fetching predictions, %d", statusErr.Code))
			}
			return redirectTo(c, RouteLogin)
		}
		return err
	}

	return c.Render(http.StatusOK, "user.html", userPage{
		Page:        newPage(c, h.sessions, "Predictions"),
		Predictions: predictions,
		Filter:      filter,
		Errors:      filterErrors,
	})
}
