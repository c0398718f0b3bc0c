package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotReady     = errors.New("store: items not loaded")
	ErrLoadInFlight = errors.New("store: load already in progress")
	ErrClosed       = errors.New("store: closed")
)

// ValidationError rejects an add with a missing required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Required builds the ValidationError for an empty required field.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "cannot be empty"}
}
