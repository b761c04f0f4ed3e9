package property

import "github.com/zclconf/go-cty/cty"

// Entry is a single named property cell. TypeName is the declared native
// type scope of the entry (e.g. "FbxFileTexture"); it may be empty for
// entries that carry no scope.
type Entry struct {
	Name     string
	TypeName string
	Value    cty.Value
}

// Table is an insertion-ordered property table. Lookups resolve to the first
// entry with a matching name; duplicate names are kept but shadowed.
//
// A nil *Table behaves like an empty table for all read operations, so
// callers resolving properties of a missing object need no special casing.
type Table struct {
	entries []Entry
}

// NewTable returns an empty property table.
func NewTable() *Table {
	return &Table{}
}

// Append adds an entry at the end of the table.
func (t *Table) Append(e Entry) {
	t.entries = append(t.entries, e)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a snapshot of the entries in insertion order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the stored value of the first entry named name, and whether
// such an entry exists.
func (t *Table) Lookup(name string) (cty.Value, bool) {
	if t == nil {
		return cty.NilVal, false
	}
	for _, e := range t.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return cty.NilVal, false
}

// ByTypeName returns a view of the table narrowed to entries whose declared
// native type name equals scope, preserving their relative order. The view
// is an independent table; appending to it does not affect the original.
func (t *Table) ByTypeName(scope string) *Table {
	out := NewTable()
	if t == nil {
		return out
	}
	for _, e := range t.entries {
		if e.TypeName == scope {
			out.entries = append(out.entries, e)
		}
	}
	return out
}
