package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature_String(t *testing.T) {
	testCases := []struct {
		name     string
		sig      Signature
		expected string
	}{
		{name: "two parameters", sig: Signature{NewParam("a", "Number"), NewParam("b", "String")}, expected: "(a Number, b String)"},
		{name: "single parameter", sig: Signature{NewParam("p", "Point")}, expected: "(p Point)"},
		{name: "empty", sig: nil, expected: "()"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.sig.String())
		})
	}
}

func TestJoinTypeNames(t *testing.T) {
	assert.Equal(t, "Number,String", JoinTypeNames([]string{"Number", "String"}))
	assert.Equal(t, "Number", JoinTypeNames([]string{"Number"}))
	assert.Equal(t, Sentinel, JoinTypeNames(nil))
	assert.Equal(t, Sentinel, JoinTypeNames([]string{}))
}

func TestMergeTypeNames_OrderSensitive(t *testing.T) {
	ab := Signature{NewParam("a", "Number"), NewParam("b", "String")}
	ba := Signature{NewParam("a", "String"), NewParam("b", "Number")}
	assert.NotEqual(t, MergeTypeNames(ab), MergeTypeNames(ba))
}

func TestValidTypeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain name", input: "Number", expected: true},
		{name: "user type", input: "Point", expected: true},
		{name: "empty", input: "", expected: false},
		{name: "contains separator", input: "Number,Number", expected: false},
		{name: "sentinel", input: Sentinel, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ValidTypeName(tc.input))
		})
	}
}
