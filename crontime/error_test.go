package crontime

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestIllegalArgumentError(t *testing.T) {
	message := "argument is nil"
	err := illegalArgumentError(message)
	if !errors.Is(err, ErrIllegalArgument) {
		t.Fatal("error must match ErrIllegalArgument")
	}
	assert.Equal(t, fmt.Sprintf("%s: %s", ErrIllegalArgument, message), err.Error())
}

func TestInvalidRecurrenceError(t *testing.T) {
	message := "invalid field"
	err := invalidRecurrenceError(message)
	if !errors.Is(err, ErrInvalidRecurrence) {
		t.Fatal("error must match ErrInvalidRecurrence")
	}
	assert.Equal(t, fmt.Sprintf("%s: %s", ErrInvalidRecurrence, message), err.Error())
}

func TestNoMatchError(t *testing.T) {
	message := "no days match in 2025-02"
	err := noMatchError(message)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatal("error must match ErrNoMatch")
	}
	assert.Equal(t, fmt.Sprintf("%s: %s", ErrNoMatch, message), err.Error())
}

func TestAsIllegalArgument(t *testing.T) {
	err := asIllegalArgument(noMatchError("year domain exhausted"))
	if !errors.Is(err, ErrIllegalArgument) {
		t.Fatal("error must match ErrIllegalArgument")
	}
	if !errors.Is(err, ErrNoMatch) {
		t.Fatal("error must match ErrNoMatch")
	}
}
