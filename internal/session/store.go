package session

import (
	"context"
	"encoding/json"
	"fmt"

	"eanmble/internal/cache"
	"eanmble/internal/errors"
)

const (
	sessionKeyPrefix = "session:"
	flashKeyPrefix   = "flash:"
)

// Session is the server-side state behind one browser session. Token is the
// opaque string the Ghastly API issued at login; it is empty while the
// session is anonymous.
type Session struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Token    string `json:"token"`
	Admin    bool   `json:"admin"`
}

// Authenticated reports whether the session carries an API token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Flash is a one-time notice shown on the next rendered page.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Flash categories, matching the style classes the templates use.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Store keeps sessions and their pending flash messages in redis.
type Store struct {
	cache cache.Store
}

// NewStore creates a redis-backed session store.
func NewStore(cache cache.Store) *Store {
	return &Store{cache: cache}
}

// Save writes the session record under its ID with the session TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sess.ID, payload, TTL)
}

// Get loads the session record for an ID.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.ErrSessionNotFound
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Delete removes the session record. Deleting an absent session is fine.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+id)
}

// AddFlash appends a one-time message for the session.
func (s *Store) AddFlash(ctx context.Context, id string, flash Flash) error {
	flashes, err := s.peekFlashes(ctx, id)
	if err != nil {
		return err
	}
	flashes = append(flashes, flash)
	payload, err := json.Marshal(flashes)
	if err != nil {
		return fmt.Errorf("marshal flashes: %w", err)
	}
	return s.cache.Set(ctx, flashKeyPrefix+id, payload, TTL)
}

// TakeFlashes returns pending messages and clears them.
func (s *Store) TakeFlashes(ctx context.Context, id string) ([]Flash, error) {
	flashes, err := s.peekFlashes(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(flashes) > 0 {
		if err := s.cache.Delete(ctx, flashKeyPrefix+id); err != nil {
			return nil, err
		}
	}
	return flashes, nil
}

func (s *Store) peekFlashes(ctx context.Context, id string) ([]Flash, error) {
	data, err := s.cache.Get(ctx, flashKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil, fmt.Errorf("unmarshal flashes: %w", err)
	}
	return flashes, nil
}
