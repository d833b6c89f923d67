package apperrors

import (
	"fmt"
	"strings"
)

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewContentNotFoundError creates a specific error for a missing catalog or browse record.
func NewContentNotFoundError(id string) *ErrNotFound {
	return &ErrNotFound{
		Resource: "content",
		ID:       id,
	}
}

// ErrInvalidCredentials is returned when an email/password pair does not match a user.
type ErrInvalidCredentials struct {
	Email string
}

// Error implements the error interface.
func (e *ErrInvalidCredentials) Error() string {
	return fmt.Sprintf("invalid credentials for %q", e.Email)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidCredentials) Is(target error) bool {
	_, ok := target.(*ErrInvalidCredentials)
	return ok
}

// ErrUnauthorized is returned when a bearer token is missing, malformed, expired or revoked.
type ErrUnauthorized struct {
	Reason string
}

// Error implements the error interface.
func (e *ErrUnauthorized) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Reason
}

// Is allows for error checking with errors.Is().
func (e *ErrUnauthorized) Is(target error) bool {
	_, ok := target.(*ErrUnauthorized)
	return ok
}

// NewUnauthorizedError creates a new ErrUnauthorized.
func NewUnauthorizedError(reason string) *ErrUnauthorized {
	return &ErrUnauthorized{Reason: reason}
}

// ErrConflict is returned when a unique field is already taken.
type ErrConflict struct {
	Resource string
	Field    string
}

// Error implements the error interface.
func (e *ErrConflict) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s already exists", e.Resource)
	}
	return fmt.Sprintf("%s with this %s already exists", e.Resource, e.Field)
}

// Is allows for error checking with errors.Is().
func (e *ErrConflict) Is(target error) bool {
	_, ok := target.(*ErrConflict)
	return ok
}

// ErrValidation lists the fields of a request that failed validation.
type ErrValidation struct {
	Fields []string
}

// Error implements the error interface.
func (e *ErrValidation) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// Is allows for error checking with errors.Is().
func (e *ErrValidation) Is(target error) bool {
	_, ok := target.(*ErrValidation)
	return ok
}

// ErrProviderStatus is returned when a metadata or news provider answers with a non-200 status.
type ErrProviderStatus struct {
	Provider   string
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrProviderStatus) Error() string {
	return fmt.Sprintf("%s returned status %d for %s", e.Provider, e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrProviderStatus) Is(target error) bool {
	_, ok := target.(*ErrProviderStatus)
	return ok
}

// ErrUnavailable is returned when a required backend dependency (database) is not connected.
type ErrUnavailable struct {
	Dependency string
}

// Error implements the error interface.
func (e *ErrUnavailable) Error() string {
	return e.Dependency + " is unavailable"
}

// Is allows for error checking with errors.Is().
func (e *ErrUnavailable) Is(target error) bool {
	_, ok := target.(*ErrUnavailable)
	return ok
}
