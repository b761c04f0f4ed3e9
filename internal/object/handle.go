package object

import (
	"github.com/vk/fbxdomgo/internal/document"
	"github.com/vk/fbxdomgo/internal/property"
)

// Handle is a lightweight, copyable view of one object in an externally
// owned document. It is valid exactly as long as the underlying document is
// alive and never allocates or mutates anything itself.
type Handle struct {
	doc document.Document
	id  document.ObjectID
}

// Resolve returns a handle for the object id, and whether the object exists
// in the document.
func Resolve(doc document.Document, id document.ObjectID) (Handle, bool) {
	if _, ok := doc.Class(id); !ok {
		return Handle{}, false
	}
	return Handle{doc: doc, id: id}, true
}

// ID returns the object's identity within its document.
func (h Handle) ID() document.ObjectID {
	return h.id
}

// Document returns the document this handle borrows from.
func (h Handle) Document() document.Document {
	return h.doc
}

// Class returns the object's class string.
func (h Handle) Class() string {
	c, _ := h.doc.Class(h.id)
	return c
}

// Subclass returns the object's subclass string, which may be empty.
func (h Handle) Subclass() string {
	s, _ := h.doc.Subclass(h.id)
	return s
}

// Properties returns the object's full property table.
func (h Handle) Properties() *property.Table {
	return h.doc.Properties(h.id)
}

// PropertiesByTypeName returns the object's property table narrowed to
// entries declared under the given native type name, e.g. "FbxFileTexture".
func (h Handle) PropertiesByTypeName(scope string) *property.Table {
	return h.doc.Properties(h.id).ByTypeName(scope)
}

// Connections returns the object's edges for the given direction, in
// declaration order.
func (h Handle) Connections(dir document.Direction) []document.Connection {
	return h.doc.Connections(h.id, dir)
}

// Linked pairs a related object's handle with the label of the edge that
// reached it. An empty label means a plain object link.
type Linked struct {
	Handle Handle
	Label  string
}

// SourceObjects returns handles for the objects connected into this one
// (the source ends of arriving edges), in edge-declaration order. Edges
// whose source id does not resolve are skipped.
func (h Handle) SourceObjects() []Linked {
	return h.linked(document.Source)
}

// DestinationObjects returns handles for the objects this one connects to
// (the destination ends of leaving edges), in edge-declaration order.
func (h Handle) DestinationObjects() []Linked {
	return h.linked(document.Destination)
}

func (h Handle) linked(dir document.Direction) []Linked {
	conns := h.doc.Connections(h.id, dir)
	out := make([]Linked, 0, len(conns))
	for _, c := range conns {
		rel, ok := Resolve(h.doc, c.Endpoint(dir))
		if !ok {
			continue
		}
		out = append(out, Linked{Handle: rel, Label: c.Label})
	}
	return out
}
