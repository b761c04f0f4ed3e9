package object

// Typed is the closed union over the category views this layer understands.
// Exactly one variant matches any handle; anything unmodeled is
// UnknownHandle. Object always returns the original, fully-usable handle.
//
// Callers consume the union with a type switch and must keep a default arm:
// the set of known categories grows over time.
type Typed interface {
	// Object returns the underlying generic handle.
	Object() Handle

	// typedVariant marks the closed set; only variants in this package
	// implement Typed.
	typedVariant()
}

// UnknownHandle is the fallback variant for objects whose (class, subclass)
// is not in the classification table. It retains the original handle
// untouched, so classification loses nothing.
type UnknownHandle struct {
	Handle
}

// Object returns the underlying generic handle.
func (h UnknownHandle) Object() Handle { return h.Handle }

func (h UnknownHandle) typedVariant() {}

// classEntry is one row of the classification table: a (class, subclass)
// pattern and the constructor for the matching category view.
type classEntry struct {
	class       string
	subclass    string
	anySubclass bool
	construct   func(Handle) Typed
}

func (e classEntry) matches(class, subclass string) bool {
	if e.class != class {
		return false
	}
	return e.anySubclass || e.subclass == subclass
}

// classTable is matched in order; the first matching row wins. Rows use
// anySubclass because subtype narrowing happens inside each category's own
// dispatcher, but exact (class, subclass) rows are legal and would simply be
// listed before the broader ones.
var classTable = []classEntry{
	{class: "Model", anySubclass: true, construct: func(h Handle) Typed { return ModelHandle{h} }},
	{class: "Deformer", anySubclass: true, construct: func(h Handle) Typed { return DeformerHandle{h} }},
	{class: "Material", anySubclass: true, construct: func(h Handle) Typed { return MaterialHandle{h} }},
	{class: "Texture", anySubclass: true, construct: func(h Handle) Typed { return TextureHandle{h} }},
	{class: "Video", anySubclass: true, construct: func(h Handle) Typed { return VideoHandle{h} }},
}

// Classify maps a handle to its category view. It is a pure function of the
// handle's (class, subclass) pair, it is total, and it never fails: handles
// that match no table row come back as UnknownHandle.
func Classify(h Handle) Typed {
	class, subclass := h.Class(), h.Subclass()
	for _, e := range classTable {
		if e.matches(class, subclass) {
			return e.construct(h)
		}
	}
	return UnknownHandle{h}
}
