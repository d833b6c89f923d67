// Package apperrors tests verify the custom error types, their Error()
// messages, Is() matching semantics and compatibility with errors.Is()
// through fmt.Errorf wrapping.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

// ---------------------------------------------------------------------------
// ErrNotFound
// ---------------------------------------------------------------------------

func TestErrNotFound_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrNotFound
		expected string
	}{
		{
			name:     "with string ID",
			err:      &ErrNotFound{Resource: "content", ID: "mov_1"},
			expected: "content with ID mov_1 not found",
		},
		{
			name:     "with int ID",
			err:      &ErrNotFound{Resource: "movie", ID: 550},
			expected: "movie with ID 550 not found",
		},
		{
			name:     "with nil ID",
			err:      &ErrNotFound{Resource: "user", ID: nil},
			expected: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrNotFound_IsThroughWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("get content: %w", NewContentNotFoundError("abc"))

	if !errors.Is(err, &ErrNotFound{}) {
		t.Error("expected wrapped ErrNotFound to match")
	}
	if errors.Is(err, &ErrConflict{}) {
		t.Error("ErrNotFound must not match ErrConflict")
	}

	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatal("expected errors.As to extract *ErrNotFound")
	}
	if nf.ID != "abc" || nf.Resource != "content" {
		t.Errorf("unexpected fields: %+v", nf)
	}
}

// ---------------------------------------------------------------------------
// Auth errors
// ---------------------------------------------------------------------------

func TestErrUnauthorized(t *testing.T) {
	t.Parallel()
	tests := []struct {
		reason   string
		expected string
	}{
		{"", "unauthorized"},
		{"token expired", "unauthorized: token expired"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			err := NewUnauthorizedError(tt.reason)
			if err.Error() != tt.expected {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.expected)
			}
			if !errors.Is(fmt.Errorf("middleware: %w", err), &ErrUnauthorized{}) {
				t.Error("expected wrapped ErrUnauthorized to match")
			}
		})
	}
}

func TestErrInvalidCredentials(t *testing.T) {
	t.Parallel()
	err := &ErrInvalidCredentials{Email: "a@b.c"}
	if err.Error() != `invalid credentials for "a@b.c"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if errors.Is(err, &ErrUnauthorized{}) {
		t.Error("ErrInvalidCredentials must not match ErrUnauthorized")
	}
}

// ---------------------------------------------------------------------------
// Conflict / validation / provider / unavailable
// ---------------------------------------------------------------------------

func TestErrConflict_Error(t *testing.T) {
	t.Parallel()
	if got := (&ErrConflict{Resource: "user", Field: "email"}).Error(); got != "user with this email already exists" {
		t.Errorf("unexpected message %q", got)
	}
	if got := (&ErrConflict{Resource: "user"}).Error(); got != "user already exists" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestErrValidation_Error(t *testing.T) {
	t.Parallel()
	err := &ErrValidation{Fields: []string{"title", "poster"}}
	if err.Error() != "invalid fields: title, poster" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(fmt.Errorf("create: %w", err), &ErrValidation{}) {
		t.Error("expected wrapped ErrValidation to match")
	}
}

func TestErrProviderStatus(t *testing.T) {
	t.Parallel()
	err := &ErrProviderStatus{Provider: "tmdb", URL: "http://x/movie/popular", StatusCode: 401}
	if err.Error() != "tmdb returned status 401 for http://x/movie/popular" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(errors.Join(errors.New("page 2"), err), &ErrProviderStatus{}) {
		t.Error("expected joined ErrProviderStatus to match")
	}
}

func TestErrUnavailable(t *testing.T) {
	t.Parallel()
	err := &ErrUnavailable{Dependency: "mongodb"}
	if err.Error() != "mongodb is unavailable" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, &ErrUnavailable{}) {
		t.Error("expected ErrUnavailable to match itself")
	}
}
