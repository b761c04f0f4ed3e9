package object

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/fbxdomgo/internal/memdoc"
	"github.com/vk/fbxdomgo/internal/property"
)

func textureFixture(t *testing.T, entries ...property.Entry) TextureHandle {
	t.Helper()
	store := memdoc.New()
	require.NoError(t, store.AddObject(1, "Texture", ""))
	for _, e := range entries {
		require.NoError(t, store.SetProperty(1, e))
	}
	tex, err := AsTexture(mustResolve(t, store, 1))
	require.NoError(t, err)
	return tex
}

func TestTextureProperties_Defaults(t *testing.T) {
	t.Parallel()

	props := textureFixture(t).Properties()

	_, ok, err := props.Alpha()
	require.NoError(t, err)
	assert.False(t, ok, "no alpha is set")

	alpha, err := props.AlphaOrDefault()
	require.NoError(t, err)
	assert.Equal(t, 1.0, alpha)

	wrapU, err := props.WrapModeUOrDefault()
	require.NoError(t, err)
	assert.Equal(t, WrapModeRepeat, wrapU)

	swap, err := props.UVSwapOrDefault()
	require.NoError(t, err)
	assert.False(t, swap)

	scaling, err := props.ScalingOrDefault()
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 1, 1}, scaling)

	blend, err := props.BlendModeOrDefault()
	require.NoError(t, err)
	assert.Equal(t, BlendModeAdditive, blend)

	uvSet, err := props.UVSetOrDefault()
	require.NoError(t, err)
	assert.Equal(t, "default", uvSet)
}

func TestTextureProperties_SetValues(t *testing.T) {
	t.Parallel()

	props := textureFixture(t,
		property.Entry{Name: "Texture alpha", TypeName: TextureNativeTypeName, Value: cty.NumberFloatVal(0.25)},
		property.Entry{Name: "WrapModeU", TypeName: TextureNativeTypeName, Value: cty.NumberIntVal(1)},
		property.Entry{Name: "UVSwap", TypeName: TextureNativeTypeName, Value: cty.True},
		property.Entry{Name: "Translation", TypeName: TextureNativeTypeName, Value: cty.TupleVal([]cty.Value{
			cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3),
		})},
		property.Entry{Name: "CurrentTextureBlendMode", TypeName: TextureNativeTypeName, Value: cty.NumberIntVal(4)},
		property.Entry{Name: "UVSet", TypeName: TextureNativeTypeName, Value: cty.StringVal("uv1")},
	).Properties()

	alpha, ok, err := props.Alpha()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.25, alpha)

	wrapU, err := props.WrapModeUOrDefault()
	require.NoError(t, err)
	assert.Equal(t, WrapModeClamp, wrapU)

	// WrapModeV is still defaulted independently.
	wrapV, err := props.WrapModeVOrDefault()
	require.NoError(t, err)
	assert.Equal(t, WrapModeRepeat, wrapV)

	swap, err := props.UVSwapOrDefault()
	require.NoError(t, err)
	assert.True(t, swap)

	trans, ok, err := props.Translation()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, [3]float64{1, 2, 3}, trans)

	blend, err := props.BlendModeOrDefault()
	require.NoError(t, err)
	assert.Equal(t, BlendModeOver, blend)

	uvSet, err := props.UVSetOrDefault()
	require.NoError(t, err)
	assert.Equal(t, "uv1", uvSet)
}

func TestTextureProperties_ScopeFiltering(t *testing.T) {
	t.Parallel()

	// The alpha is declared under the wrong native type scope, so the
	// texture surface must treat it as absent.
	props := textureFixture(t,
		property.Entry{Name: "Texture alpha", TypeName: "SomethingElse", Value: cty.NumberFloatVal(0.25)},
	).Properties()

	_, ok, err := props.Alpha()
	require.NoError(t, err)
	assert.False(t, ok)

	alpha, err := props.AlphaOrDefault()
	require.NoError(t, err)
	assert.Equal(t, 1.0, alpha)
}

func TestTextureProperties_DecodeErrors(t *testing.T) {
	t.Parallel()

	props := textureFixture(t,
		property.Entry{Name: "Translation", TypeName: TextureNativeTypeName, Value: cty.NumberFloatVal(5)},
		property.Entry{Name: "WrapModeU", TypeName: TextureNativeTypeName, Value: cty.NumberIntVal(7)},
	).Properties()

	_, _, err := props.Translation()
	require.Error(t, err, "a scalar is not a 3-vector")
	var decodeErr *property.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "Translation", decodeErr.Property)
	assert.Equal(t, "translation vector", decodeErr.Description)

	// The defaulted accessor must propagate the same failure, not default it.
	_, err = props.TranslationOrDefault()
	require.Error(t, err)

	_, err = props.WrapModeUOrDefault()
	require.Error(t, err, "7 is not a wrap mode")
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "wrap mode U", decodeErr.Description)
}

func TestTexture_VideoClip(t *testing.T) {
	t.Parallel()

	store := memdoc.New()
	require.NoError(t, store.AddObject(1, "Texture", ""))
	require.NoError(t, store.AddObject(2, "Video", "Clip"))
	require.NoError(t, store.AddObject(3, "Material", ""))

	// A labeled (property-binding) edge into the texture must be ignored
	// even though it also points at a classifiable object.
	require.NoError(t, store.Connect(3, 1, "SomeBinding"))
	require.NoError(t, store.Connect(2, 1, ""))

	tex, err := AsTexture(mustResolve(t, store, 1))
	require.NoError(t, err)

	clip, ok := tex.VideoClip()
	require.True(t, ok)
	assert.Equal(t, mustResolve(t, store, 2).ID(), clip.ID())
}

func TestTexture_VideoClip_NoMatch(t *testing.T) {
	t.Parallel()

	store := memdoc.New()
	require.NoError(t, store.AddObject(1, "Texture", ""))
	require.NoError(t, store.AddObject(2, "Video", "Offline"))
	require.NoError(t, store.Connect(2, 1, ""))

	tex, err := AsTexture(mustResolve(t, store, 1))
	require.NoError(t, err)

	// A video that is not a clip does not satisfy the resolver.
	_, ok := tex.VideoClip()
	assert.False(t, ok)
}
