package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedType is returned when Validate receives a value it has
	// no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidationFailed is the sentinel every [ValidationError] unwraps to.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError lists every unmet constraint of a validated value as a
// human-readable message.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a [ValidationError] from messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
