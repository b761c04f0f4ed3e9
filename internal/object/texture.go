package object

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/fbxdomgo/internal/document"
	"github.com/vk/fbxdomgo/internal/property"
)

// TextureNativeTypeName scopes the texture property surface.
const TextureNativeTypeName = "FbxFileTexture"

// WrapMode is a texture coordinate wrap mode.
type WrapMode int

const (
	// WrapModeRepeat tiles the texture.
	WrapModeRepeat WrapMode = iota
	// WrapModeClamp clamps coordinates to the edge texels.
	WrapModeClamp
)

// String returns a human-readable name for the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapModeRepeat:
		return "repeat"
	case WrapModeClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// BlendMode is a texture blend mode.
type BlendMode int

const (
	// BlendModeTranslucent blends by the texture's alpha.
	BlendModeTranslucent BlendMode = iota
	// BlendModeAdditive adds the texture onto the layer below.
	BlendModeAdditive
	// BlendModeModulate multiplies with the layer below.
	BlendModeModulate
	// BlendModeModulate2 multiplies with the layer below, doubled.
	BlendModeModulate2
	// BlendModeOver paints over the layer below.
	BlendModeOver
)

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendModeTranslucent:
		return "translucent"
	case BlendModeAdditive:
		return "additive"
	case BlendModeModulate:
		return "modulate"
	case BlendModeModulate2:
		return "modulate2"
	case BlendModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// wrapModeLoader decodes the raw integer representation of a wrap mode,
// rejecting values outside the enumeration.
func wrapModeLoader() property.Loader[WrapMode] {
	raw := property.Int64()
	return func(v cty.Value) (WrapMode, error) {
		n, err := raw(v)
		if err != nil {
			return 0, err
		}
		if n < int64(WrapModeRepeat) || n > int64(WrapModeClamp) {
			return 0, fmt.Errorf("expected a wrap mode value in [0, 1], got %d", n)
		}
		return WrapMode(n), nil
	}
}

// blendModeLoader decodes the raw integer representation of a blend mode,
// rejecting values outside the enumeration.
func blendModeLoader() property.Loader[BlendMode] {
	raw := property.Int64()
	return func(v cty.Value) (BlendMode, error) {
		n, err := raw(v)
		if err != nil {
			return 0, err
		}
		if n < int64(BlendModeTranslucent) || n > int64(BlendModeOver) {
			return 0, fmt.Errorf("expected a blend mode value in [0, 4], got %d", n)
		}
		return BlendMode(n), nil
	}
}

// TextureHandle is the category view for objects with the "Texture" class.
type TextureHandle struct {
	Handle
}

// AsTexture is the explicit downcast constructor for texture objects. It
// fails with a *ClassMismatchError when the handle's class is not "Texture".
func AsTexture(h Handle) (TextureHandle, error) {
	if err := requireClass(h, "Texture"); err != nil {
		return TextureHandle{}, err
	}
	return TextureHandle{h}, nil
}

// Object returns the underlying generic handle.
func (h TextureHandle) Object() Handle { return h.Handle }

func (h TextureHandle) typedVariant() {}

// VideoClip returns the video clip feeding this texture, if any: the first
// unlabeled source connection that classifies as a Video/Clip object.
// Labeled edges are property bindings and are ignored here.
func (h TextureHandle) VideoClip() (VideoClipHandle, bool) {
	return FindRelated(h.Handle, document.Source, Unlabeled(), func(t Typed) (VideoClipHandle, bool) {
		v, ok := t.(VideoHandle)
		if !ok {
			return VideoClipHandle{}, false
		}
		clip, ok := v.Typed().(VideoClipHandle)
		return clip, ok
	})
}

// Properties returns the texture property surface, scoped to entries
// declared under the FbxFileTexture native type.
func (h TextureHandle) Properties() TextureProperties {
	return TextureProperties{table: h.PropertiesByTypeName(TextureNativeTypeName)}
}

// Texture property contracts. Both accessor flavors of every property below
// derive from its single spec, keeping name, loader, description, and
// default in one place.
var (
	texAlpha = property.Spec[float64]{
		Name: "Texture alpha", Description: "texture alpha value",
		Load: property.Float64(), Default: 1.0,
	}
	texWrapModeU = property.Spec[WrapMode]{
		Name: "WrapModeU", Description: "wrap mode U",
		Load: wrapModeLoader(), Default: WrapModeRepeat,
	}
	texWrapModeV = property.Spec[WrapMode]{
		Name: "WrapModeV", Description: "wrap mode V",
		Load: wrapModeLoader(), Default: WrapModeRepeat,
	}
	texUVSwap = property.Spec[bool]{
		Name: "UVSwap", Description: "UV swap flag",
		Load: property.Bool(), Default: false,
	}
	texPremultiplyAlpha = property.Spec[bool]{
		Name: "PremultiplyAlpha", Description: "premultiply-alpha flag",
		Load: property.Bool(), Default: false,
	}
	texTranslation = property.Spec[[3]float64]{
		Name: "Translation", Description: "translation vector",
		Load: property.Float64x3(), Default: [3]float64{0, 0, 0},
	}
	texRotation = property.Spec[[3]float64]{
		Name: "Rotation", Description: "rotation vector",
		Load: property.Float64x3(), Default: [3]float64{0, 0, 0},
	}
	texScaling = property.Spec[[3]float64]{
		Name: "Scaling", Description: "scaling vector",
		Load: property.Float64x3(), Default: [3]float64{1, 1, 1},
	}
	texRotationPivot = property.Spec[[3]float64]{
		Name: "TextureRotationPivot", Description: "rotation pivot vector",
		Load: property.Float64x3(), Default: [3]float64{0, 0, 0},
	}
	texScalingPivot = property.Spec[[3]float64]{
		Name: "TextureScalingPivot", Description: "scaling pivot vector",
		Load: property.Float64x3(), Default: [3]float64{0, 0, 0},
	}
	texBlendMode = property.Spec[BlendMode]{
		Name: "CurrentTextureBlendMode", Description: "texture blend mode",
		Load: blendModeLoader(), Default: BlendModeAdditive,
	}
	texUVSet = property.Spec[string]{
		Name: "UVSet", Description: "UV set name",
		Load: property.String(), Default: "default",
	}
)

// TextureProperties is the typed accessor surface for texture properties.
// The boolean of each plain accessor reports presence; the OrDefault flavor
// substitutes the documented default on absence only.
type TextureProperties struct {
	table *property.Table
}

// Table returns the underlying scoped property table.
func (p TextureProperties) Table() *property.Table { return p.table }

// Alpha returns the default alpha value.
func (p TextureProperties) Alpha() (float64, bool, error) { return texAlpha.Get(p.table) }

// AlphaOrDefault returns the default alpha value, or 1.0 if not set.
func (p TextureProperties) AlphaOrDefault() (float64, error) { return texAlpha.GetOrDefault(p.table) }

// WrapModeU returns the wrap mode along U.
func (p TextureProperties) WrapModeU() (WrapMode, bool, error) { return texWrapModeU.Get(p.table) }

// WrapModeUOrDefault returns the wrap mode along U, or Repeat if not set.
func (p TextureProperties) WrapModeUOrDefault() (WrapMode, error) {
	return texWrapModeU.GetOrDefault(p.table)
}

// WrapModeV returns the wrap mode along V.
func (p TextureProperties) WrapModeV() (WrapMode, bool, error) { return texWrapModeV.Get(p.table) }

// WrapModeVOrDefault returns the wrap mode along V, or Repeat if not set.
func (p TextureProperties) WrapModeVOrDefault() (WrapMode, error) {
	return texWrapModeV.GetOrDefault(p.table)
}

// UVSwap reports whether U and V should be swapped.
func (p TextureProperties) UVSwap() (bool, bool, error) { return texUVSwap.Get(p.table) }

// UVSwapOrDefault reports whether U and V should be swapped, or false if not set.
func (p TextureProperties) UVSwapOrDefault() (bool, error) { return texUVSwap.GetOrDefault(p.table) }

// PremultiplyAlpha reports whether the alpha is premultiplied.
func (p TextureProperties) PremultiplyAlpha() (bool, bool, error) {
	return texPremultiplyAlpha.Get(p.table)
}

// PremultiplyAlphaOrDefault reports whether the alpha is premultiplied, or
// false if not set.
func (p TextureProperties) PremultiplyAlphaOrDefault() (bool, error) {
	return texPremultiplyAlpha.GetOrDefault(p.table)
}

// Translation returns the default translation vector.
func (p TextureProperties) Translation() ([3]float64, bool, error) { return texTranslation.Get(p.table) }

// TranslationOrDefault returns the default translation vector, or zeros if not set.
func (p TextureProperties) TranslationOrDefault() ([3]float64, error) {
	return texTranslation.GetOrDefault(p.table)
}

// Rotation returns the default rotation vector.
func (p TextureProperties) Rotation() ([3]float64, bool, error) { return texRotation.Get(p.table) }

// RotationOrDefault returns the default rotation vector, or zeros if not set.
func (p TextureProperties) RotationOrDefault() ([3]float64, error) {
	return texRotation.GetOrDefault(p.table)
}

// Scaling returns the default scaling vector.
func (p TextureProperties) Scaling() ([3]float64, bool, error) { return texScaling.Get(p.table) }

// ScalingOrDefault returns the default scaling vector, or ones if not set.
func (p TextureProperties) ScalingOrDefault() ([3]float64, error) {
	return texScaling.GetOrDefault(p.table)
}

// RotationPivot returns the rotation pivot vector.
func (p TextureProperties) RotationPivot() ([3]float64, bool, error) {
	return texRotationPivot.Get(p.table)
}

// RotationPivotOrDefault returns the rotation pivot vector, or zeros if not set.
func (p TextureProperties) RotationPivotOrDefault() ([3]float64, error) {
	return texRotationPivot.GetOrDefault(p.table)
}

// ScalingPivot returns the scaling pivot vector.
func (p TextureProperties) ScalingPivot() ([3]float64, bool, error) {
	return texScalingPivot.Get(p.table)
}

// ScalingPivotOrDefault returns the scaling pivot vector, or zeros if not set.
func (p TextureProperties) ScalingPivotOrDefault() ([3]float64, error) {
	return texScalingPivot.GetOrDefault(p.table)
}

// BlendMode returns the texture blend mode.
func (p TextureProperties) BlendMode() (BlendMode, bool, error) { return texBlendMode.Get(p.table) }

// BlendModeOrDefault returns the texture blend mode, or Additive if not set.
func (p TextureProperties) BlendModeOrDefault() (BlendMode, error) {
	return texBlendMode.GetOrDefault(p.table)
}

// UVSet returns the UV set name.
func (p TextureProperties) UVSet() (string, bool, error) { return texUVSet.Get(p.table) }

// UVSetOrDefault returns the UV set name, or "default" if not set.
func (p TextureProperties) UVSetOrDefault() (string, error) { return texUVSet.GetOrDefault(p.table) }
