package errors

import (
	"fmt"
)

// ErrNotFound is returned when a product or order is not present in the
// session's cached read models.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// ErrValidation is a local validation failure. No network call is made when
// one of these is returned.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrAPI wraps a non-2xx response from the storefront API
type ErrAPI struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *ErrAPI) Error() string {
	return fmt.Sprintf("storefront API error: %s %s: status %d, body: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// ErrTokenRefresh is returned when the bearer token could not be refreshed
// before an outbound call.
type ErrTokenRefresh struct {
	Err error
}

func (e *ErrTokenRefresh) Error() string {
	return fmt.Sprintf("failed to refresh token: %v", e.Err)
}

func (e *ErrTokenRefresh) Unwrap() error {
	return e.Err
}

// ErrAuthInit is returned when the identity provider exchange at startup fails
type ErrAuthInit struct {
	Err error
}

func (e *ErrAuthInit) Error() string {
	return fmt.Sprintf("authentication initialization failed: %v", e.Err)
}

func (e *ErrAuthInit) Unwrap() error {
	return e.Err
}

// ErrNotAuthenticated is returned for data operations attempted before the
// session is authenticated.
type ErrNotAuthenticated struct{}

func (e *ErrNotAuthenticated) Error() string {
	return "session is not authenticated"
}

// ErrForbidden is returned when an admin-only control is used without the
// admin role claim.
type ErrForbidden struct {
	Action string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("%s requires the admin role", e.Action)
}
