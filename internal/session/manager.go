package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/config"
)

// Session is the per-request view of a browser session. A zero ID means the
// browser has no server-side session yet.
type Session struct {
	ID string
	Data
}

// Manager ties the session cookie to a Store.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, cfg config.Session) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.CookieSecure,
	}
}

// Load returns the session for r. Unknown, expired or malformed cookies yield
// an anonymous session rather than an error.
func (m *Manager) Load(r *http.Request) (Session, error) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || uuid.Validate(c.Value) != nil {
		return Session{}, nil
	}

	data, err := m.store.Get(r.Context(), c.Value)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("store get: %w", err)
	}

	return Session{ID: c.Value, Data: data}, nil
}

// Renew stores data under a fresh ID, discards the old one and sets the
// cookie. Call it whenever privileges change.
func (m *Manager) Renew(ctx context.Context, w http.ResponseWriter, old Session, data Data) (Session, error) {
	if old.ID != "" {
		if err := m.store.Delete(ctx, old.ID); err != nil {
			return Session{}, fmt.Errorf("store delete: %w", err)
		}
	}

	s := Session{ID: uuid.NewString(), Data: data}
	if err := m.store.Set(ctx, s.ID, s.Data, m.ttl); err != nil {
		return Session{}, fmt.Errorf("store set: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    s.ID,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return s, nil
}

// Destroy forgets the session and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s Session) error {
	if s.ID != "" {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("store delete: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
