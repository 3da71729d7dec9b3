// Package typetag derives the runtime type name of an actual call argument.
//
// Type names form a small nominal vocabulary shared with declared parameter
// types: Number, String, Boolean, Array, Object, Function, Channel, Null and
// Undefined, plus the name of any defined Go type (Point, Duration, ...).
// Two values dispatch the same way iff they produce the same name.
package typetag

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// Names of the built-in type tags.
const (
	Number        = "Number"
	String        = "String"
	Boolean       = "Boolean"
	Array         = "Array"
	Object        = "Object"
	Function      = "Function"
	Channel       = "Channel"
	Null          = "Null"
	UndefinedName = "Undefined"
)

// TypeNamer is implemented by values that name their own type. A nil
// pointer is always Null; TypeName is never called on it.
type TypeNamer interface {
	TypeName() string
}

type undefined struct{}

func (undefined) TypeName() string { return UndefinedName }

func (undefined) String() string { return "undefined" }

// Undefined is the absent-value sentinel. Passing it as an argument
// dispatches on the "Undefined" type name.
var Undefined TypeNamer = undefined{}

// Tagged carries a value together with an explicitly chosen type name.
type Tagged struct {
	Name  string
	Value any
}

// TypeName implements TypeNamer.
func (t Tagged) TypeName() string { return t.Name }

// As attaches the type name to v.
func As(name string, v any) Tagged {
	return Tagged{Name: name, Value: v}
}

var ctyValueType = reflect.TypeOf(cty.Value{})

// Of returns the type name of v.
func Of(v any) string {
	if v == nil {
		return Null
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null
	}

	switch tv := v.(type) {
	case cty.Value:
		return ofCtyValue(tv)
	case *cty.Value:
		return ofCtyValue(*tv)
	case TypeNamer:
		return tv.TypeName()
	}

	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Null
		}
		if rv.Type() == ctyValueType {
			return ofCtyValue(rv.Interface().(cty.Value))
		}
		if rv.CanInterface() {
			if namer, ok := rv.Interface().(TypeNamer); ok {
				return namer.TypeName()
			}
		}
	}

	return ofGoType(rv.Type())
}

// ofGoType maps predeclared and unnamed Go types onto the shared vocabulary
// and defined types onto their own name.
func ofGoType(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.Name()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Map, reflect.Struct:
		return Object
	case reflect.Func:
		return Function
	case reflect.Chan:
		return Channel
	default:
		return t.String()
	}
}

func ofCtyValue(v cty.Value) string {
	if !v.IsKnown() {
		return UndefinedName
	}
	if v.IsNull() {
		return Null
	}
	return FromCtyType(v.Type())
}

// FromCtyType returns the type name for a cty type. Element and attribute
// types are not part of the name.
func FromCtyType(t cty.Type) string {
	switch {
	case t.Equals(cty.Number):
		return Number
	case t.Equals(cty.String):
		return String
	case t.Equals(cty.Bool):
		return Boolean
	case t.IsListType(), t.IsSetType(), t.IsTupleType():
		return Array
	case t.IsMapType(), t.IsObjectType():
		return Object
	default:
		return t.FriendlyName()
	}
}

// Names returns the type name of each argument, in order.
func Names(args []any) []string {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = Of(arg)
	}
	return names
}
