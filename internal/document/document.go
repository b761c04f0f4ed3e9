package document

import "github.com/vk/fbxdomgo/internal/property"

// ObjectID is the opaque identity of one object in a scene document. It is
// stable for the lifetime of the document it came from, and has no meaning
// across documents.
type ObjectID int64

// Direction selects which end of an object's connection edges to walk.
type Direction int

const (
	// Source walks the edges arriving at an object; the related objects are
	// the source ends of those edges (e.g. the video clip feeding a texture).
	Source Direction = iota
	// Destination walks the edges leaving an object; the related objects are
	// the destination ends (e.g. the model a material is assigned to).
	Destination
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Source:
		return "source"
	case Destination:
		return "destination"
	default:
		return "unknown"
	}
}

// Connection is a single directed edge between two objects. An empty Label
// marks a plain object link; a non-empty Label marks a property binding
// (e.g. a texture wired to a material's "DiffuseColor").
//
// Documents may contain several edges between the same pair of objects, and
// several edges of the same semantic kind from one object. They are never
// deduplicated, and their declaration order is preserved.
type Connection struct {
	Source      ObjectID
	Destination ObjectID
	Label       string
}

// Labeled reports whether the edge carries a label.
func (c Connection) Labeled() bool {
	return c.Label != ""
}

// Endpoint returns the edge's object on the given side.
func (c Connection) Endpoint(dir Direction) ObjectID {
	if dir == Source {
		return c.Source
	}
	return c.Destination
}

// Document is the read surface of an externally-owned scene document.
//
// The boolean returned by Class and Subclass reports whether the object id
// exists at all; an existing object always has a class, while its subclass
// may be the empty string.
type Document interface {
	// Class returns the class string of the object, and whether the object
	// exists in the document.
	Class(id ObjectID) (string, bool)

	// Subclass returns the subclass string of the object (possibly empty),
	// and whether the object exists in the document.
	Subclass(id ObjectID) (string, bool)

	// Properties returns the object's property table. A missing object
	// yields an empty table, never nil panics downstream: the property layer
	// treats a nil table as "no properties set".
	Properties(id ObjectID) *property.Table

	// Connections returns the object's edges for the given direction, in
	// declaration order. Direction Source returns the edges whose
	// destination is id; Destination returns the edges whose source is id.
	// The returned slice is a snapshot the caller may iterate freely.
	Connections(id ObjectID, dir Direction) []Connection

	// ObjectIDs returns every object id in the document, in a stable order.
	ObjectIDs() []ObjectID
}
