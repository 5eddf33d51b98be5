package tracker

import (
	"errors"
	"fmt"
)

// ErrInsufficientStock rejects a sale whose quantity exceeds the
// product's remaining stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ValidationError reports a missing or malformed input field, or a
// reference to a store or product that does not exist. The operation
// that returns it has not mutated or persisted anything.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
