package session

import (
	"errors"
	"testing"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/cache"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := cache.New("memory", cache.ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewManager(store)
}

func TestManager_Lifecycle(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()
	s := &Session{
		ID:        "jti-1",
		Token:     "token",
		User:      models.UserProfile{ID: "demo_user", Username: "Demo User"},
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}

	if err := m.Open(s); err != nil {
		t.Fatalf("Open: %v", err)
	}
	loaded, err := m.Load("jti-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User.Username != "Demo User" || loaded.Token != "token" {
		t.Errorf("Unexpected session %+v", loaded)
	}

	m.Close("jti-1")
	if _, err := m.Load("jti-1"); !errors.Is(err, &apperrors.ErrUnauthorized{}) {
		t.Errorf("Expected unauthorized after close, got %v", err)
	}
	m.Close("jti-1")
}

func TestManager_Expired(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()
	m.now = func() time.Time { return now.Add(2 * time.Hour) }

	if err := m.Open(&Session{ID: "old", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := m.Load("old"); !errors.Is(err, &apperrors.ErrUnauthorized{}) {
		t.Errorf("Expected unauthorized for expired session, got %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Expected expired session to be removed, %d left", m.Len())
	}
}

func TestManager_OpenRequiresID(t *testing.T) {
	if err := newTestManager(t).Open(&Session{}); err == nil {
		t.Error("Expected error for session without id")
	}
}
