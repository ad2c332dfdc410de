// Package common defines the error taxonomy shared by the store, the session
// service, the composer and the REPL host. Callers match sentinels with
// errors.Is and read details with errors.As.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors: missing fields, duplicates, broken references.
	ErrValidation = errors.New("validation error")

	// Policy errors: the action is well-formed but not allowed.
	ErrPolicyViolation = errors.New("policy violation")

	// Auth errors.
	ErrAuthFailure           = errors.New("login failed")
	ErrNoPendingVerification = errors.New("no pending verification")
)

// ValidationError reports a rejected write. Field names the offending input
// (e.g. "email"); Message is the user-facing text shown next to it.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a *ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// PolicyError reports an action refused by a business rule.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string { return e.Message }

func (e *PolicyError) Unwrap() error { return ErrPolicyViolation }

// AuthError is returned for every failed login. Hint carries the message to
// show; Unverified is set when the credentials matched an account that has
// not been verified yet.
type AuthError struct {
	Hint       string
	Unverified bool
}

func (e *AuthError) Error() string { return "login failed: " + e.Hint }

func (e *AuthError) Unwrap() error { return ErrAuthFailure }

// Message extracts the user-facing text from err, falling back to
// err.Error() for infrastructure failures.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var pe *PolicyError
	if errors.As(err, &pe) {
		return pe.Message
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Hint
	}
	return err.Error()
}
