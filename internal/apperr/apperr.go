// Package apperr defines the failure kinds the persistence layer is allowed
// to surface. Every repository error wraps exactly one of these sentinels so
// callers can branch with errors.Is instead of guessing from log output.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned before any store round trip when an entity
	// fails its validity predicate.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a lookup matches no row, or a mutation
	// by primary key affects no row.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint is returned when the store rejects a mutation because
	// of referential integrity (dependent rows exist).
	ErrConstraint = errors.New("constraint violated")

	// ErrUnavailable covers every other store-level failure: connectivity,
	// malformed statement, driver errors.
	ErrUnavailable = errors.New("store unavailable")
)

// Validationf builds a validation error with a caller-facing message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsConstraint(err error) bool  { return errors.Is(err, ErrConstraint) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
