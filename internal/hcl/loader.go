package hcl

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/fbxdomgo/internal/ctxlog"
	"github.com/vk/fbxdomgo/internal/document"
	"github.com/vk/fbxdomgo/internal/fsutil"
	"github.com/vk/fbxdomgo/internal/memdoc"
	"github.com/vk/fbxdomgo/internal/property"
	"github.com/vk/fbxdomgo/internal/schema"
)

// Loader parses scene files into an in-memory document store.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new scene loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads the scene at path — a single .hcl file or a directory searched
// recursively — and returns a populated document store. Object ids are
// assigned sequentially in declaration order across files (stable filename
// order), and connection endpoints resolve against the names of all files,
// so edges may reference objects defined elsewhere.
func (l *Loader) Load(ctx context.Context, path string) (*memdoc.Store, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.sceneFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scene files discovered.", "path", path, "count", len(files))

	configs := make([]*schema.SceneConfig, 0, len(files))
	for _, file := range files {
		cfg, err := l.parseFile(file)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	store := memdoc.New()
	names := make(map[string]document.ObjectID)

	// All objects first: connections may reference objects from later files.
	var nextID document.ObjectID = 1
	for i, cfg := range configs {
		for _, obj := range cfg.Objects {
			if _, exists := names[obj.Name]; exists {
				return nil, fmt.Errorf("duplicate object name %q in %s", obj.Name, files[i])
			}
			id := nextID
			nextID++
			names[obj.Name] = id

			if err := store.AddObject(id, obj.Class, obj.Subclass); err != nil {
				return nil, fmt.Errorf("failed to add object %q: %w", obj.Name, err)
			}
			if err := l.populateProperties(store, id, obj); err != nil {
				return nil, fmt.Errorf("object %q in %s: %w", obj.Name, files[i], err)
			}
		}
	}
	logger.Debug("Scene objects loaded.", "count", len(names))

	for i, cfg := range configs {
		for _, conn := range cfg.Connections {
			src, ok := names[conn.Source]
			if !ok {
				return nil, fmt.Errorf("connection in %s references unknown source object %q", files[i], conn.Source)
			}
			dst, ok := names[conn.Destination]
			if !ok {
				return nil, fmt.Errorf("connection in %s references unknown destination object %q", files[i], conn.Destination)
			}
			if err := store.Connect(src, dst, conn.Label); err != nil {
				return nil, fmt.Errorf("failed to connect %q to %q: %w", conn.Source, conn.Destination, err)
			}
		}
	}

	logger.Debug("Scene loaded successfully.", "objects", len(names))
	return store, nil
}

// sceneFiles resolves path to the ordered list of scene files to parse.
func (l *Loader) sceneFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scene path %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to search %q for scene files: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl scene files found under %q", path)
	}
	return files, nil
}

// parseFile parses and decodes a single scene file.
func (l *Loader) parseFile(path string) (*schema.SceneConfig, error) {
	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, diags)
	}

	var cfg schema.SceneConfig
	diags = gohcl.DecodeBody(hclFile.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scene file %s: %w", path, diags)
	}
	return &cfg, nil
}

// populateProperties stores an object's property cells: labeled `property`
// blocks first (they carry a native type scope), then the attributes of the
// `properties` shorthand block in source order.
func (l *Loader) populateProperties(store *memdoc.Store, id document.ObjectID, obj *schema.Object) error {
	for _, p := range obj.Properties {
		val, diags := p.Value.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("property %q: %w", p.Name, diags)
		}
		entry := property.Entry{Name: p.Name, TypeName: p.TypeName, Value: val}
		if err := store.SetProperty(id, entry); err != nil {
			return err
		}
	}

	if obj.Inline == nil {
		return nil
	}
	attrs, diags := obj.Inline.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("properties block: %w", diags)
	}

	// Attribute maps are unordered; restore source order for stable tables.
	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, a := range attrs {
		ordered = append(ordered, a)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	for _, a := range ordered {
		val, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("property %q: %w", a.Name, diags)
		}
		if err := store.SetProperty(id, property.Entry{Name: a.Name, Value: val}); err != nil {
			return err
		}
	}
	return nil
}
