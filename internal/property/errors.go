package property

import "fmt"

// DecodeError reports a property whose stored value could not be converted
// to the requested semantic type. It carries the canonical property name and
// the human-readable description of the expected shape, so diagnostics can
// name what was being loaded rather than just where it broke.
type DecodeError struct {
	// Property is the canonical property name, e.g. "Texture alpha".
	Property string
	// Description is the human-readable description of the expected value,
	// e.g. "texture alpha value".
	Description string
	// Err is the underlying conversion failure.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to load %s (property %q): %v", e.Description, e.Property, e.Err)
}

// Unwrap exposes the underlying conversion failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
