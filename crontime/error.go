package crontime

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument   = errors.New("illegal argument")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrNoMatch           = errors.New("no matching execution time")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// invalidRecurrenceError returns an invalid recurrence error with a
// custom error message, which unwraps to ErrInvalidRecurrence.
func invalidRecurrenceError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecurrence, message)
}

// noMatchError returns a no match error with a custom error message,
// which unwraps to ErrNoMatch.
func noMatchError(message string) error {
	return fmt.Errorf("%w: %s", ErrNoMatch, message)
}

// asIllegalArgument wraps the error so that it unwraps to
// ErrIllegalArgument in addition to its own chain.
func asIllegalArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrIllegalArgument, err)
}
