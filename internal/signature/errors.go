package signature

import (
	"errors"
	"fmt"
)

var (
	// ErrFormatting reports a declaration without a parameter list.
	ErrFormatting = errors.New(`there is a formatting error in the declaration.
Your declaration should look something like this:
	(a = Number, b = Number)
or, destructured:
	({a = Number, b = Number}) => a + b
A pattern without parameters is declared as:
	()`)

	// ErrMissingType reports a parameter written without `= Type`.
	ErrMissingType = errors.New("parameter requires an explicit type")

	// ErrInvalidSignature reports a malformed parameter fragment.
	ErrInvalidSignature = errors.New("invalid argument setup")
)

// Error describes why a declaration was rejected. It unwraps to one of the
// package sentinels.
type Error struct {
	Fragment string
	Reason   string
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%v: %q: %s", e.Err, e.Fragment, e.Reason)
	case e.Err == ErrFormatting:
		return fmt.Sprintf("%v\ngot: %q", e.Err, e.Fragment)
	default:
		return fmt.Sprintf("%v: %q", e.Err, e.Fragment)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(sentinel error, fragment, reason string) *Error {
	return &Error{Fragment: fragment, Reason: reason, Err: sentinel}
}
