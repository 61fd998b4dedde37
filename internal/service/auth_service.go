package service

import (
	"context"
	"fmt"

	"eanmble/internal/ghastly"
	"eanmble/internal/session"
)

// AuthService exchanges credentials for an API token and keeps the result in
// server-side session state.
type AuthService interface {
	// Login authenticates against the remote API. On success the session is
	// populated and saved, and the admin flag steers the post-login redirect.
	// Failures pass through as ghastly.ErrUnavailable or *ghastly.StatusError.
	Login(ctx context.Context, sess *session.Session, userName, password string) (admin bool, err error)
	// Logout drops the server-side session record. Idempotent.
	Logout(ctx context.Context, sess *session.Session) error
}

type authService struct {
	api      ghastly.API
	sessions *session.Store
}

// NewAuthService creates a new authentication service.
func NewAuthService(api ghastly.API, sessions *session.Store) AuthService {
	return &authService{api: api, sessions: sessions}
}

func (s *authService) Login(ctx context.Context, sess *session.Session, userName, password string) (bool, error) {
	result, err := s.api.Login(ctx, userName, password)
	if err != nil {
		return false, err
	}

	sess.UserName = userName
	sess.Token = result.Token
	sess.Admin = result.Admin
	if err := s.sessions.Save(ctx, sess); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}
	return result.Admin, nil
}

func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}
	sess.UserName = ""
	sess.Token = ""
	sess.Admin = false
	return s.sessions.Delete(ctx, sess.ID)
}
