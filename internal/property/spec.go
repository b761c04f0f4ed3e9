package property

import "fmt"

// Get looks up name in the table and decodes it through load. The boolean
// reports presence: an absent property returns (zero, false, nil), which is
// a normal outcome, not an error. A present-but-undecodable property returns
// (zero, true, err) with the property name attached.
func Get[T any](tbl *Table, name string, load Loader[T]) (T, bool, error) {
	var zero T
	raw, ok := tbl.Lookup(name)
	if !ok {
		return zero, false, nil
	}
	v, err := load(raw)
	if err != nil {
		return zero, true, fmt.Errorf("failed to load property %q: %w", name, err)
	}
	return v, true, nil
}

// GetOrDefault behaves like Get but substitutes def when the property is
// absent. Decode failures still propagate: a default never papers over
// malformed data.
func GetOrDefault[T any](tbl *Table, name string, load Loader[T], def T) (T, error) {
	v, ok, err := Get(tbl, name, load)
	if err != nil {
		return v, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Spec is the declarative contract for one property of a category's surface:
// canonical name, decoder, human-readable description, and the default used
// when the property is not set. Both accessor flavors of every category are
// derived from the same Spec value, which keeps them in lockstep by
// construction.
type Spec[T any] struct {
	// Name is the canonical property name in the document, e.g. "WrapModeU".
	Name string
	// Description names the value for diagnostics, e.g. "wrap mode U".
	Description string
	// Load decodes the stored value.
	Load Loader[T]
	// Default is substituted by GetOrDefault when the property is absent.
	Default T
}

// Get resolves the property against the table. Decode failures come back as
// a *DecodeError carrying the spec's name and description.
func (s Spec[T]) Get(tbl *Table) (T, bool, error) {
	var zero T
	raw, ok := tbl.Lookup(s.Name)
	if !ok {
		return zero, false, nil
	}
	v, err := s.Load(raw)
	if err != nil {
		return zero, true, &DecodeError{Property: s.Name, Description: s.Description, Err: err}
	}
	return v, true, nil
}

// GetOrDefault resolves the property, substituting the spec's default when
// the property is absent. Decode failures still propagate.
func (s Spec[T]) GetOrDefault(tbl *Table) (T, error) {
	v, ok, err := s.Get(tbl)
	if err != nil {
		return v, err
	}
	if !ok {
		return s.Default, nil
	}
	return v, nil
}
