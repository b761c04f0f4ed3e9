package object

import "fmt"

// ClassMismatchError reports an explicit downcast constructor invoked on a
// handle whose class does not match the category being constructed. The
// general classifier never produces this error; only the As* entry points do.
type ClassMismatchError struct {
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *ClassMismatchError) Error() string {
	return fmt.Sprintf("class mismatch: expected %q class but got %q class", e.Expected, e.Actual)
}

// requireClass validates a downcast precondition.
func requireClass(h Handle, want string) error {
	if c := h.Class(); c != want {
		return &ClassMismatchError{Expected: want, Actual: c}
	}
	return nil
}
