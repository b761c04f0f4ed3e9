package memdoc

import (
	"fmt"
	"sync"

	"github.com/vk/fbxdomgo/internal/document"
	"github.com/vk/fbxdomgo/internal/property"
)

// record holds one object's stored fields.
type record struct {
	class    string
	subclass string
	props    *property.Table
}

// Store implements document.Document using maps and a mutex for thread-safe
// concurrent access. Connections live in one flat, append-ordered slice with
// per-endpoint index lists, so per-direction queries preserve declaration
// order.
type Store struct {
	mu      sync.RWMutex
	order   []document.ObjectID
	objects map[document.ObjectID]*record

	conns         []document.Connection
	bySource      map[document.ObjectID][]int // edges leaving the object
	byDestination map[document.ObjectID][]int // edges arriving at the object
}

// New creates a new, empty in-memory document store.
func New() *Store {
	return &Store{
		objects:       make(map[document.ObjectID]*record),
		bySource:      make(map[document.ObjectID][]int),
		byDestination: make(map[document.ObjectID][]int),
	}
}

// AddObject registers a new object. Registering an id twice is an error:
// object identity must be stable for the document's lifetime, so a second
// definition is always a bug in the producer.
func (s *Store) AddObject(id document.ObjectID, class, subclass string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[id]; exists {
		return fmt.Errorf("object %d already exists in document", id)
	}
	s.objects[id] = &record{class: class, subclass: subclass, props: property.NewTable()}
	s.order = append(s.order, id)
	return nil
}

// SetProperty appends a property entry to the object's table.
func (s *Store) SetProperty(id document.ObjectID, e property.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.objects[id]
	if !ok {
		return fmt.Errorf("object %d not found in document", id)
	}
	rec.props.Append(e)
	return nil
}

// Connect appends a directed edge from src to dst with the given label
// (empty for a plain object link). Both endpoints must already exist.
// Duplicate edges are permitted and kept in order.
func (s *Store) Connect(src, dst document.ObjectID, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[src]; !ok {
		return fmt.Errorf("connection source object %d not found in document", src)
	}
	if _, ok := s.objects[dst]; !ok {
		return fmt.Errorf("connection destination object %d not found in document", dst)
	}

	idx := len(s.conns)
	s.conns = append(s.conns, document.Connection{Source: src, Destination: dst, Label: label})
	s.bySource[src] = append(s.bySource[src], idx)
	s.byDestination[dst] = append(s.byDestination[dst], idx)
	return nil
}

// Class implements document.Document.
func (s *Store) Class(id document.ObjectID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.objects[id]
	if !ok {
		return "", false
	}
	return rec.class, true
}

// Subclass implements document.Document.
func (s *Store) Subclass(id document.ObjectID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.objects[id]
	if !ok {
		return "", false
	}
	return rec.subclass, true
}

// Properties implements document.Document. A missing object yields an empty
// table.
func (s *Store) Properties(id document.ObjectID) *property.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.objects[id]
	if !ok {
		return property.NewTable()
	}
	return rec.props
}

// Connections implements document.Document, returning the object's edges
// for the given direction in declaration order.
func (s *Store) Connections(id document.ObjectID, dir document.Direction) []document.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var idxs []int
	if dir == document.Source {
		idxs = s.byDestination[id]
	} else {
		idxs = s.bySource[id]
	}

	out := make([]document.Connection, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.conns[i])
	}
	return out
}

// ObjectIDs implements document.Document, returning ids in insertion order.
func (s *Store) ObjectIDs() []document.ObjectID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]document.ObjectID, len(s.order))
	copy(out, s.order)
	return out
}
