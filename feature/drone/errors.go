package drone

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a drone key does not exist.
var ErrNotFound = errors.New("drone not found")

// ValidationError reports a field value outside its accepted domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
