package schema

import "github.com/hashicorp/hcl/v2"

// --- Scene Document Structures ---

// PropertyBlock is a labeled `property "<name>" { ... }` block carrying one
// property cell with an explicit native type scope.
type PropertyBlock struct {
	Name     string         `hcl:"name,label"`
	Value    hcl.Expression `hcl:"value"`
	TypeName string         `hcl:"type,optional"`
}

// PropertiesBlock is the `properties { ... }` shorthand: every attribute of
// its body becomes an unscoped property cell.
type PropertiesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Object represents an `object "<name>" { ... }` block from a scene file.
// The label is the file-local object name used by connection blocks; object
// ids are assigned by the loader in declaration order.
type Object struct {
	Name       string           `hcl:"name,label"`
	Class      string           `hcl:"class"`
	Subclass   string           `hcl:"subclass,optional"`
	Properties []*PropertyBlock `hcl:"property,block"`
	Inline     *PropertiesBlock `hcl:"properties,block"`
}

// Connection represents a `connection { ... }` block: a directed edge from
// one named object to another, optionally tagged with a label.
type Connection struct {
	Source      string `hcl:"source"`
	Destination string `hcl:"destination"`
	Label       string `hcl:"label,optional"`
}

// SceneConfig represents the top-level structure of a scene file.
type SceneConfig struct {
	Objects     []*Object     `hcl:"object,block"`
	Connections []*Connection `hcl:"connection,block"`
}
