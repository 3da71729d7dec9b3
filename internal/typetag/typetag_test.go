package typetag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

type point struct{ X, Y int }

type Celsius float64

type Path []point

type shape struct{ kind string }

func (s shape) TypeName() string { return s.kind }

type ptrNamer struct{ name string }

func (p *ptrNamer) TypeName() string { return p.name }

func TestOf(t *testing.T) {
	var nilPoint *point
	var nilSlice []int
	var nilShape *shape
	var nilPtrNamer *ptrNamer
	var nilTagged *Tagged
	nilShapeInner := &nilShape
	shapePtr := &shape{kind: "Triangle"}

	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "untyped nil", value: nil, expected: Null},
		{name: "nil pointer", value: nilPoint, expected: Null},
		{name: "undefined sentinel", value: Undefined, expected: "Undefined"},
		{name: "int", value: 2, expected: Number},
		{name: "uint8", value: uint8(7), expected: Number},
		{name: "float64", value: 2.5, expected: Number},
		{name: "string", value: "x", expected: String},
		{name: "bool", value: true, expected: Boolean},
		{name: "unnamed slice", value: []string{"a"}, expected: Array},
		{name: "nil unnamed slice", value: nilSlice, expected: Array},
		{name: "unnamed array", value: [2]int{1, 2}, expected: Array},
		{name: "unnamed map", value: map[string]any{"a": 1}, expected: Object},
		{name: "anonymous struct", value: struct{ A int }{A: 1}, expected: Object},
		{name: "func literal", value: func() {}, expected: Function},
		{name: "channel", value: make(chan int), expected: Channel},
		{name: "defined struct", value: point{1, 2}, expected: "point"},
		{name: "pointer to defined struct", value: &point{1, 2}, expected: "point"},
		{name: "defined numeric type", value: Celsius(21.5), expected: "Celsius"},
		{name: "defined slice type", value: Path{{1, 2}}, expected: "Path"},
		{name: "library type", value: time.Second, expected: "Duration"},
		{name: "self-describing value", value: shape{kind: "Circle"}, expected: "Circle"},
		{name: "pointer to self-describing value", value: &shape{kind: "Square"}, expected: "Square"},
		{name: "explicit tag", value: As("Meters", 3), expected: "Meters"},
		{name: "nil pointer with value-receiver namer", value: nilShape, expected: Null},
		{name: "nil pointer with pointer-receiver namer", value: nilPtrNamer, expected: Null},
		{name: "nil tagged pointer", value: nilTagged, expected: Null},
		{name: "pointer to nil namer pointer", value: nilShapeInner, expected: Null},
		{name: "pointer-receiver namer", value: &ptrNamer{name: "Vector"}, expected: "Vector"},
		{name: "pointer to namer pointer", value: &shapePtr, expected: "Triangle"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Of(tc.value))
		})
	}
}

func TestOf_CtyValues(t *testing.T) {
	listVal := cty.ListVal([]cty.Value{cty.NumberIntVal(1)})

	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "number", value: cty.NumberIntVal(2), expected: Number},
		{name: "string", value: cty.StringVal("x"), expected: String},
		{name: "bool", value: cty.True, expected: Boolean},
		{name: "list", value: listVal, expected: Array},
		{name: "tuple", value: cty.TupleVal([]cty.Value{cty.True, cty.StringVal("a")}), expected: Array},
		{name: "set", value: cty.SetVal([]cty.Value{cty.StringVal("a")}), expected: Array},
		{name: "map", value: cty.MapVal(map[string]cty.Value{"a": cty.True}), expected: Object},
		{name: "object", value: cty.ObjectVal(map[string]cty.Value{"a": cty.True}), expected: Object},
		{name: "null", value: cty.NullVal(cty.String), expected: Null},
		{name: "unknown", value: cty.UnknownVal(cty.Number), expected: "Undefined"},
		{name: "pointer to value", value: &listVal, expected: Array},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Of(tc.value))
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{Number, String, Null}, Names([]any{1, "y", nil}))
	assert.Empty(t, Names(nil))
}
