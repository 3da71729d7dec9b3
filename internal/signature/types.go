package signature

import "strings"

// Sentinel is the TypeKey of a signature with no parameters.
const Sentinel = "_"

const separator = ","

// Param is one declared parameter: its name and its type name.
type Param struct {
	Name string
	Type string
}

// NewParam creates a parameter declaration.
func NewParam(name, typeName string) Param {
	return Param{Name: name, Type: typeName}
}

// Signature is an ordered parameter list.
type Signature []Param

// String renders the signature as `(a Number, b Number)`.
func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteRune('(')
	for i, p := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteRune(' ')
		sb.WriteString(p.Type)
	}
	sb.WriteRune(')')
	return sb.String()
}

// Types returns the type name of every parameter, in order.
func (s Signature) Types() []string {
	types := make([]string, len(s))
	for i, p := range s {
		types[i] = p.Type
	}
	return types
}

// MergeTypeNames canonicalizes a signature into its TypeKey.
func MergeTypeNames(sig Signature) string {
	return JoinTypeNames(sig.Types())
}

// JoinTypeNames joins type names into a TypeKey. Declarations and call
// arguments must both go through here so that their keys compare equal.
func JoinTypeNames(names []string) string {
	if len(names) == 0 {
		return Sentinel
	}
	return strings.Join(names, separator)
}

// ValidTypeName reports whether name can stand for exactly one parameter in
// a TypeKey: it must be non-empty, must not contain the separator and must
// not be the Sentinel.
func ValidTypeName(name string) bool {
	return name != "" && name != Sentinel && !strings.Contains(name, separator)
}
