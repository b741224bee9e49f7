package clamp

import (
	"errors"
	"fmt"
)

// ErrPreconditionViolated reports a bound that cannot be clamped against:
// min greater than max or endpoints with different digit counts.
var ErrPreconditionViolated = errors.New("clamp: bound precondition violated")

// InvalidCharacterError is the panic value raised when a non-digit byte reaches
// the engine. Callers are expected to filter input before clamping.
type InvalidCharacterError struct {
	Input    string
	Position int
	Char     byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("clamp: invalid character %q at position %d", e.Char, e.Position)
}
