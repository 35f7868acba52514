package sketch

import "errors"

// ErrInvalidInput is matched by every error caused by malformed arguments.
var ErrInvalidInput = errors.New("sketch: invalid input")

// InvalidInputError reports which operation rejected its input and why.
type InvalidInputError struct {
	Op     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "sketch: " + e.Op + ": " + e.Reason
}

// Unwrap lets errors.Is(err, ErrInvalidInput) succeed.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
