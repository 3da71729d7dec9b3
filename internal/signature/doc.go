/*
Package signature turns a declared parameter list into an ordered Signature
and canonicalizes it into a TypeKey.

A textual declaration is any string whose first parenthesized group lists
the parameters as `name = Type` pairs, optionally destructured:

	(a = Number, b = Number)
	({a = Number, b = String}) => a + b

Type fragments are HCL type expressions. Identifiers other than the HCL
keywords are kept verbatim (`Number`, `Point`); the keywords `string`,
`number` and `bool` map onto `String`, `Number` and `Boolean`; the
constructors `list`, `set` and `tuple` map onto `Array`, and `map` and
`object` onto `Object`. Element and attribute types are checked for syntax
only and never take part in the key.

A TypeKey is the comma-joined list of parameter types in declaration order.
A zero-parameter signature canonicalizes to Sentinel.
*/
package signature
