package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds surfaced by the services. Handlers branch on these with
// errors.Is instead of matching message substrings.
var (
	// ErrInvalidCredentials deliberately covers both unknown email and
	// wrong password, callers must not learn which factor failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("user account is disabled")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	// ErrStoreUnavailable marks a persistence fault. Never retried here,
	// the boundary decides on retry policy.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries per-field messages for malformed, missing or
// conflicting input. Checked eagerly, before any mutation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func ValidationFromFields(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// storeFault wraps an unexpected repository error as ErrStoreUnavailable
// while keeping the cause in the chain.
func storeFault(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
