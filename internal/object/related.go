package object

import "github.com/vk/fbxdomgo/internal/document"

// labelFilterKind discriminates LabelFilter values.
type labelFilterKind int

const (
	labelUnlabeled labelFilterKind = iota
	labelAny
	labelExact
)

// LabelFilter selects connection edges by label when resolving related
// objects. Unlabeled edges are plain object links; labeled edges usually
// denote property bindings, a different semantic relationship.
type LabelFilter struct {
	kind labelFilterKind
	name string
}

// Unlabeled matches only edges that carry no label.
func Unlabeled() LabelFilter {
	return LabelFilter{kind: labelUnlabeled}
}

// AnyLabel matches every edge regardless of label.
func AnyLabel() LabelFilter {
	return LabelFilter{kind: labelAny}
}

// Label matches only edges carrying exactly the given label.
func Label(name string) LabelFilter {
	return LabelFilter{kind: labelExact, name: name}
}

func (f LabelFilter) matches(c document.Connection) bool {
	switch f.kind {
	case labelAny:
		return true
	case labelExact:
		return c.Label == f.name
	default:
		return !c.Labeled()
	}
}

// FindRelated walks the handle's edges in the given direction, keeps those
// passing the label filter, classifies each resolvable endpoint, and hands
// the result to pick. The first pick that accepts wins; edge-declaration
// order makes the choice deterministic across calls.
//
// Multiple qualifying edges are legal in scene documents and deliberately
// not treated as an error; callers that want every match use AllRelated.
func FindRelated[T any](h Handle, dir document.Direction, filter LabelFilter, pick func(Typed) (T, bool)) (T, bool) {
	for _, c := range h.Connections(dir) {
		if !filter.matches(c) {
			continue
		}
		rel, ok := Resolve(h.Document(), c.Endpoint(dir))
		if !ok {
			continue
		}
		if v, ok := pick(Classify(rel)); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// AllRelated is the full-sequence variant of FindRelated: it returns every
// accepted match in edge-declaration order instead of only the first.
func AllRelated[T any](h Handle, dir document.Direction, filter LabelFilter, pick func(Typed) (T, bool)) []T {
	var out []T
	for _, c := range h.Connections(dir) {
		if !filter.matches(c) {
			continue
		}
		rel, ok := Resolve(h.Document(), c.Endpoint(dir))
		if !ok {
			continue
		}
		if v, ok := pick(Classify(rel)); ok {
			out = append(out, v)
		}
	}
	return out
}
