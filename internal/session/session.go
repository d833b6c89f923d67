package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/cache"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

// Session is the server-side state behind one issued token
type Session struct {
	ID        string             `json:"id"` // JWT id (jti)
	Token     string             `json:"token"`
	User      models.UserProfile `json:"user"`
	IssuedAt  time.Time          `json:"issuedAt"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// Manager opens, loads and closes sessions stored in a cache. The cache
// TTL bounds how long an idle session survives; ExpiresAt bounds the rest.
type Manager struct {
	store cache.Cache
	now   func() time.Time
}

func NewManager(store cache.Cache) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Open stores s. It replaces any session with the same id.
func (m *Manager) Open(s *Session) error {
	if s == nil || s.ID == "" {
		return errors.New("session has no id")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	m.store.Set(s.ID, data)
	logger := config.GetLogger()
	logger.Debug().Str("session", s.ID).Str("user", s.User.ID).Msg("Session opened")
	return nil
}

// Load returns the open session for id. Closed, unknown and expired sessions
// are reported as unauthorized.
func (m *Manager) Load(id string) (*Session, error) {
	data, ok := m.store.Get(id)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("session closed or unknown")
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		m.store.Remove(id)
		return nil, apperrors.NewUnauthorizedError("corrupt session")
	}
	if !s.ExpiresAt.IsZero() && !m.now().Before(s.ExpiresAt) {
		m.store.Remove(id)
		return nil, apperrors.NewUnauthorizedError("session expired")
	}
	return &s, nil
}

// Close ends the session. Closing an unknown session is not an error.
func (m *Manager) Close(id string) {
	m.store.Remove(id)
	logger := config.GetLogger()
	logger.Debug().Str("session", id).Msg("Session closed")
}

// Len is the number of stored sessions.
func (m *Manager) Len() int {
	return m.store.Len()
}
