package memdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/fbxdomgo/internal/document"
	"github.com/vk/fbxdomgo/internal/property"
)

func TestStore_AddObject(t *testing.T) {
	t.Parallel()
	store := New()

	require.NoError(t, store.AddObject(1, "Texture", ""))
	require.NoError(t, store.AddObject(2, "Deformer", "Skin"))

	// Identity must stay stable: a second definition of the same id is a bug.
	err := store.AddObject(1, "Video", "Clip")
	require.Error(t, err)

	class, ok := store.Class(1)
	require.True(t, ok)
	assert.Equal(t, "Texture", class)

	subclass, ok := store.Subclass(2)
	require.True(t, ok)
	assert.Equal(t, "Skin", subclass)

	_, ok = store.Class(404)
	assert.False(t, ok)
}

func TestStore_Properties(t *testing.T) {
	t.Parallel()
	store := New()
	require.NoError(t, store.AddObject(1, "Texture", ""))

	require.NoError(t, store.SetProperty(1, property.Entry{
		Name: "Texture alpha", TypeName: "FbxFileTexture", Value: cty.NumberFloatVal(0.5),
	}))
	require.Error(t, store.SetProperty(404, property.Entry{Name: "x", Value: cty.True}))

	v, ok := store.Properties(1).Lookup("Texture alpha")
	require.True(t, ok)
	assert.True(t, v.RawEquals(cty.NumberFloatVal(0.5)))

	// A missing object yields an empty, usable table.
	assert.Equal(t, 0, store.Properties(404).Len())
}

func TestStore_Connections(t *testing.T) {
	t.Parallel()
	store := New()
	require.NoError(t, store.AddObject(1, "Texture", ""))
	require.NoError(t, store.AddObject(2, "Video", "Clip"))
	require.NoError(t, store.AddObject(3, "Material", ""))

	require.Error(t, store.Connect(404, 1, ""), "missing source endpoint")
	require.Error(t, store.Connect(1, 404, ""), "missing destination endpoint")

	require.NoError(t, store.Connect(2, 1, ""))
	require.NoError(t, store.Connect(3, 1, "SomeBinding"))
	// Duplicate edges are permitted and kept.
	require.NoError(t, store.Connect(2, 1, ""))

	arriving := store.Connections(1, document.Source)
	require.Len(t, arriving, 3)
	assert.Equal(t, document.ObjectID(2), arriving[0].Source)
	assert.Equal(t, document.ObjectID(3), arriving[1].Source)
	assert.Equal(t, "SomeBinding", arriving[1].Label)
	assert.Equal(t, document.ObjectID(2), arriving[2].Source)

	leaving := store.Connections(2, document.Destination)
	require.Len(t, leaving, 2)
	assert.Equal(t, document.ObjectID(1), leaving[0].Destination)

	assert.Empty(t, store.Connections(1, document.Destination))
	assert.Empty(t, store.Connections(404, document.Source))
}

func TestStore_ObjectIDs(t *testing.T) {
	t.Parallel()
	store := New()
	require.NoError(t, store.AddObject(7, "Model", "Mesh"))
	require.NoError(t, store.AddObject(3, "Texture", ""))
	require.NoError(t, store.AddObject(5, "Video", "Clip"))

	// Insertion order, not numeric order.
	assert.Equal(t, []document.ObjectID{7, 3, 5}, store.ObjectIDs())
}

func TestConnection_Endpoint(t *testing.T) {
	t.Parallel()

	c := document.Connection{Source: 2, Destination: 1, Label: "x"}
	assert.Equal(t, document.ObjectID(2), c.Endpoint(document.Source))
	assert.Equal(t, document.ObjectID(1), c.Endpoint(document.Destination))
	assert.True(t, c.Labeled())
	assert.False(t, document.Connection{Source: 2, Destination: 1}.Labeled())
}
