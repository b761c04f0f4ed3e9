// Package hcl loads scene documents authored in HCL into the in-memory
// document store.
//
// # Why an HCL Front End
//
// The typed object layer only ever sees the document.Document interface, so
// any parser can feed it. HCL is the authoring format for fixtures and for
// the CLI because scene graphs are naturally block-structured: an `object`
// block per node, a `connection` block per edge, and property cells as plain
// HCL expressions that arrive as cty values — exactly the representation the
// property layer's loaders decode.
//
// Values are kept verbatim at load time; all semantic decoding (is this a
// number, a 3-vector, a wrap mode) happens later, in the typed layer. A
// scene that stores nonsense still loads; it fails at the property access
// that cares, with a property-level diagnostic.
package hcl
