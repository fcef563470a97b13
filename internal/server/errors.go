package server

import (
	"fmt"
	"net/http"
)

// ErrInvalidPassphrase indicates a failed token exchange.
type ErrInvalidPassphrase struct{}

func (e *ErrInvalidPassphrase) Error() string {
	return "invalid access passphrase"
}

// ErrEntryNotFound indicates the requested analysis entry does not exist.
type ErrEntryNotFound struct {
	ID string
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("analysis entry not found: %s", e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidPassphrase:
		return http.StatusUnauthorized
	case *ErrEntryNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
