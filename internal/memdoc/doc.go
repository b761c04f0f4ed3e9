// Package memdoc provides a simple, thread-safe, in-memory implementation
// of the document.Document interface, plus the builder surface used to
// populate it.
//
// # Lifecycle
//
// A store is write-many while a loader populates it, then read-only for the
// rest of its life. The typed object layer assumes the document does not
// change during an access; the store's own locking protects it against
// racing builders, not against readers observing a half-built scene.
package memdoc
