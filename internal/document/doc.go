// Package document defines the narrow read interface to an externally-owned
// scene document, plus the leaf types shared by everything built on top of it.
//
// # Why Document Is an Interface
//
// The typed object layer never owns the parsed scene: it borrows it. Keeping
// the collaborator surface down to "give me the class, subclass, property
// table, and connection edges of an object id" means the typed layer works
// identically over the in-memory store (internal/memdoc), a future
// binary-parser-backed store, or a test double. Nothing in this package or
// above it mutates the document.
//
// # Concurrency
//
// Every method is a synchronous, side-effect-free read. Implementations must
// be safe for concurrent readers for as long as the document itself is not
// being mutated.
package document
