package domain

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is matched (via errors.Is) by every ValidationError.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError reports a required field that is missing or malformed.
// It is returned before any storage I/O takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets callers test with errors.Is(err, ErrValidationFailed).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
