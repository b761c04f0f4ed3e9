// Package app wires the scene loader, the typed object layer, and the
// report writer into the runnable inspector application.
//
// The app owns its logger and output writer, so tests can run whole
// inspections against a buffer without touching global state.
package app
