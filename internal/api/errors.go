package api

import (
	"fmt"

	"wordadventure/internal/validation"
)

// NetworkError is returned when no HTTP response was received
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is returned for non-2xx responses and undecodable bodies.
// Message comes from the error body when the backend sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// AuthError is returned when a login fails and no demo fallback applies
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ValidationError is returned before any network call for rejected input
type ValidationError = validation.ValidationError
