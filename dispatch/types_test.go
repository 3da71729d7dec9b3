package dispatch_test

import (
	"testing"

	"github.com/specialistvlad/typedispatch/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestKeyOf(t *testing.T) {
	testCases := []struct {
		name     string
		args     []any
		expected string
	}{
		{name: "no arguments", args: nil, expected: dispatch.Sentinel},
		{name: "numbers", args: []any{2, 3.5}, expected: "Number,Number"},
		{name: "mixed", args: []any{2, "y"}, expected: "Number,String"},
		{name: "null and undefined", args: []any{nil, dispatch.Undefined}, expected: "Null,Undefined"},
		{name: "cty values", args: []any{cty.NumberIntVal(1), cty.StringVal("a")}, expected: "Number,String"},
		{name: "tagged", args: []any{dispatch.As("Point", [2]int{1, 2})}, expected: "Point"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dispatch.KeyOf(tc.args...))
		})
	}
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "Boolean", dispatch.TypeOf(false))
	assert.Equal(t, "Object", dispatch.TypeOf(map[string]int{}))
	assert.Equal(t, "Array", dispatch.TypeOf([]int{}))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unbound", dispatch.Unbound.String())
	assert.Equal(t, "bound", dispatch.Bound.String())
	assert.Equal(t, "unknown", dispatch.State(7).String())
}
