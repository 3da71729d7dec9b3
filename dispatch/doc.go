// Package dispatch implements runtime multiple dispatch.
//
// A Family is a named function with several implementations ("patterns"),
// each registered with an ordered list of parameter types. Calling the
// family derives the type name of every actual argument, joins them into a
// key and invokes the implementation registered under exactly that key.
// There is no partial matching, no coercion and no default pattern.
//
//	add, _ := dispatch.Declare("add")
//	_ = add.AddText("({a = Number, b = Number}) => a + b", addNumbers)
//	_ = add.Add(dispatch.Signature{dispatch.P("a", "String"), dispatch.P("b", "String")}, concat)
//
//	add.Call(2, 3)     // addNumbers(2, 3)
//	add.Call("x", "y") // concat("x", "y")
//	add.Call(2, "y")   // ErrNoMatch
//
// A family starts Unbound: calling it is legal and returns (nil, nil)
// without dispatching. The first successful registration binds it to the
// dispatcher for good.
//
// Type names come from a small vocabulary (Number, String, Boolean, Array,
// Object, Function, Channel, Null, Undefined) plus the names of defined Go
// types; see TypeOf.
package dispatch
