package dispatch

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/typedispatch/internal/signature"
)

var (
	// ErrInvalidName is returned by Declare for an empty family name.
	ErrInvalidName = errors.New("you must specify a function name")

	// ErrNilImplementation is returned when registering a nil Implementation.
	ErrNilImplementation = errors.New("implementation must not be nil")

	// ErrNoMatch is returned by a call whose argument types match no pattern.
	ErrNoMatch = errors.New("unable to find a function pattern match")

	// ErrUnknownFamily is returned by Scope.Call for an undeclared name.
	ErrUnknownFamily = errors.New("no function family declared under this name")

	// ErrFormatting is returned when a textual declaration has no
	// parenthesized parameter list. Its message shows the expected shape.
	ErrFormatting = signature.ErrFormatting

	// ErrMissingType is returned for a parameter declared without a type.
	ErrMissingType = signature.ErrMissingType

	// ErrInvalidSignature is returned for a malformed parameter declaration.
	ErrInvalidSignature = signature.ErrInvalidSignature
)

// SignatureError details a rejected declaration. It unwraps to
// ErrFormatting, ErrMissingType or ErrInvalidSignature.
type SignatureError = signature.Error

// NoMatchError reports the argument types of a call that matched no pattern.
type NoMatchError struct {
	Family string
	Key    string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%v: family %q, argument types (%s)", ErrNoMatch, e.Family, e.Key)
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}
