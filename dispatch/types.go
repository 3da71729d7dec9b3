package dispatch

import (
	"github.com/specialistvlad/typedispatch/internal/signature"
	"github.com/specialistvlad/typedispatch/internal/typetag"
)

// Implementation is the body of one pattern. It receives the call's
// arguments unchanged.
type Implementation func(args ...any) (any, error)

// Param declares one parameter by name and type name.
type Param = signature.Param

// Signature is an ordered parameter declaration.
type Signature = signature.Signature

// P is shorthand for declaring a parameter.
func P(name, typeName string) Param {
	return signature.NewParam(name, typeName)
}

// Sentinel is the key of a pattern with no parameters.
const Sentinel = signature.Sentinel

// TypeNamer is implemented by argument values that name their own type.
type TypeNamer = typetag.TypeNamer

// Tagged is a value carrying an explicit type name.
type Tagged = typetag.Tagged

// Undefined is the absent-value argument. It dispatches as "Undefined";
// a nil argument dispatches as "Null".
var Undefined = typetag.Undefined

// As tags v with an explicit type name for dispatch.
func As(name string, v any) Tagged {
	return typetag.As(name, v)
}

// TypeOf returns the type name a call would derive for v.
func TypeOf(v any) string {
	return typetag.Of(v)
}

// KeyOf returns the key a call with args would look up.
func KeyOf(args ...any) string {
	return signature.JoinTypeNames(typetag.Names(args))
}

// State is the binding state of a Family.
type State int

const (
	// Unbound families have no patterns; calls are inert.
	Unbound State = iota
	// Bound families dispatch every call.
	Bound
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	default:
		return "unknown"
	}
}
