package session

import (
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"eanmble/internal/errors"
)

const contextKey = "eanmble.session"

// Manager ties the signed cookie to the redis record and exposes the
// per-request session to handlers through the echo context.
type Manager struct {
	codec *CookieCodec
	store *Store
}

// NewManager creates a session manager.
func NewManager(codec *CookieCodec, store *Store) *Manager {
	return &Manager{codec: codec, store: store}
}

// Middleware resolves the session for every request. Anonymous visitors get a
// fresh session ID so flash messages work before login; a valid cookie whose
// record expired keeps its ID but comes back unauthenticated.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			var sess *Session
			if cookie, err := c.Cookie(CookieName); err == nil {
				if sid, err := m.codec.Parse(cookie.Value); err == nil {
					loaded, err := m.store.Get(ctx, sid)
					switch {
					case err == nil:
						sess = loaded
					case stderrors.Is(err, errors.ErrSessionNotFound):
						sess = &Session{ID: sid}
					default:
						// redis unreachable: fall through to an anonymous session
						sess = &Session{ID: sid}
					}
				}
			}
			if sess == nil {
				sid := uuid.New().String()
				value, err := m.codec.Issue(sid)
				if err != nil {
					return err
				}
				c.SetCookie(NewCookie(value))
				sess = &Session{ID: sid}
			}
			c.Set(contextKey, sess)
			return next(c)
		}
	}
}

// FromContext returns the session resolved by the middleware, or nil outside it.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(contextKey).(*Session)
	return sess
}

// Save persists the current session record.
func (m *Manager) Save(c echo.Context, sess *Session) error {
	return m.store.Save(c.Request().Context(), sess)
}

// Flash queues a one-time message for the next rendered page.
func (m *Manager) Flash(c echo.Context, category, message string) {
	sess := FromContext(c)
	if sess == nil {
		return
	}
	if err := m.store.AddFlash(c.Request().Context(), sess.ID, Flash{Message: message, Category: category}); err != nil {
		c.Logger().Warnf("flash dropped: %v", err)
	}
}

// TakeFlashes drains pending messages for the current session.
func (m *Manager) TakeFlashes(c echo.Context) []Flash {
	sess := FromContext(c)
	if sess == nil {
		return nil
	}
	flashes, err := m.store.TakeFlashes(c.Request().Context(), sess.ID)
	if err != nil {
		c.Logger().Warnf("flashes unavailable: %v", err)
		return nil
	}
	return flashes
}
