package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind for failures caused by a caller-supplied value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is the kind for operations forbidden by the entity's current lifecycle state.
	ErrInvalidState = errors.New("invalid state")
	// ErrAccountNotFound is returned when an account number is not present in the registry.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when saving an account whose number is already registered.
	ErrAccountExists = errors.New("account already exists")
)

// DomainError carries a human-readable message and wraps one of the two
// error kinds, so callers select the kind with errors.Is while the message
// stays exact for display and tests.
type DomainError struct {
	kind    error
	message string
}

// Error returns the descriptive message.
func (e *DomainError) Error() string {
	return e.message
}

// Unwrap exposes the error kind for errors.Is.
func (e *DomainError) Unwrap() error {
	return e.kind
}

// NewInvalidArgument creates an invalid-argument domain error.
func NewInvalidArgument(format string, args ...any) error {
	return &DomainError{kind: ErrInvalidArgument, message: fmt.Sprintf(format, args...)}
}

// NewInvalidState creates an invalid-state domain error.
func NewInvalidState(format string, args ...any) error {
	return &DomainError{kind: ErrInvalidState, message: fmt.Sprintf(format, args...)}
}
