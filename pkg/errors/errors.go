package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition indicates a workflow operation attempted out of order
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrMatchFailed indicates the external matching call errored or returned
	// content that does not fit the expected shape
	ErrMatchFailed = errors.New("match failed")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// InvalidTransitionError creates an invalid transition error with context
func InvalidTransitionError(from, op string) error {
	return fmt.Errorf("%s not allowed in state %s: %w", op, from, ErrInvalidTransition)
}

// MatchFailedError creates a match failure with context
func MatchFailedError(reason string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s: %v: %w", reason, cause, ErrMatchFailed)
	}
	return fmt.Errorf("%s: %w", reason, ErrMatchFailed)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
