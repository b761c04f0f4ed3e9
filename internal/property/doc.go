// Package property implements the property-resolution protocol of the typed
// object layer: ordered property tables holding loosely-typed cty values,
// pure loaders that decode a stored value into a semantic Go type, and
// declarative per-property specs from which both the plain and the
// default-substituting accessor of a category are derived.
//
// # Why cty Values
//
// Scene documents store property cells as loosely-typed data (a number here,
// a 3-element tuple there, a string elsewhere). cty already models exactly
// that shape, and its convert package gives precise "cannot convert X to Y"
// failures, so loaders are thin wrappers over convert.Convert instead of a
// hand-rolled coercion matrix.
//
// # Absence vs. Malformation
//
// A property that is not set is a normal outcome, reported through a boolean,
// never through an error. Only a present-but-undecodable value produces an
// error, and that error always reaches the caller: defaults substitute
// absence, never malformed data.
package property
