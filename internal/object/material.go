package object

import (
	"github.com/vk/fbxdomgo/internal/document"
	"github.com/vk/fbxdomgo/internal/property"
)

// MaterialNativeTypeName scopes the material property surface.
const MaterialNativeTypeName = "FbxSurfaceMaterial"

// MaterialHandle is the category view for objects with the "Material" class.
type MaterialHandle struct {
	Handle
}

// AsMaterial is the explicit downcast constructor for material objects. It
// fails with a *ClassMismatchError when the handle's class is not
// "Material".
func AsMaterial(h Handle) (MaterialHandle, error) {
	if err := requireClass(h, "Material"); err != nil {
		return MaterialHandle{}, err
	}
	return MaterialHandle{h}, nil
}

// Object returns the underlying generic handle.
func (h MaterialHandle) Object() Handle { return h.Handle }

func (h MaterialHandle) typedVariant() {}

// DiffuseTexture returns the texture bound to this material's diffuse color
// channel, if any: the first source connection labeled "DiffuseColor" that
// classifies as a Texture object.
func (h MaterialHandle) DiffuseTexture() (TextureHandle, bool) {
	return FindRelated(h.Handle, document.Source, Label("DiffuseColor"), func(t Typed) (TextureHandle, bool) {
		tex, ok := t.(TextureHandle)
		return tex, ok
	})
}

// Properties returns the material property surface, scoped to entries
// declared under the FbxSurfaceMaterial native type.
func (h MaterialHandle) Properties() MaterialProperties {
	return MaterialProperties{table: h.PropertiesByTypeName(MaterialNativeTypeName)}
}

// Material property contracts.
var (
	matDiffuseColor = property.Spec[[3]float64]{
		Name: "DiffuseColor", Description: "diffuse color",
		Load: property.Float64x3(), Default: [3]float64{0.8, 0.8, 0.8},
	}
	matAmbientColor = property.Spec[[3]float64]{
		Name: "AmbientColor", Description: "ambient color",
		Load: property.Float64x3(), Default: [3]float64{0.2, 0.2, 0.2},
	}
	matEmissiveColor = property.Spec[[3]float64]{
		Name: "EmissiveColor", Description: "emissive color",
		Load: property.Float64x3(), Default: [3]float64{0, 0, 0},
	}
	matShadingModel = property.Spec[string]{
		Name: "ShadingModel", Description: "shading model name",
		Load: property.String(), Default: "Phong",
	}
)

// MaterialProperties is the typed accessor surface for material properties.
type MaterialProperties struct {
	table *property.Table
}

// Table returns the underlying scoped property table.
func (p MaterialProperties) Table() *property.Table { return p.table }

// DiffuseColor returns the diffuse color.
func (p MaterialProperties) DiffuseColor() ([3]float64, bool, error) {
	return matDiffuseColor.Get(p.table)
}

// DiffuseColorOrDefault returns the diffuse color, or [0.8 0.8 0.8] if not set.
func (p MaterialProperties) DiffuseColorOrDefault() ([3]float64, error) {
	return matDiffuseColor.GetOrDefault(p.table)
}

// AmbientColor returns the ambient color.
func (p MaterialProperties) AmbientColor() ([3]float64, bool, error) {
	return matAmbientColor.Get(p.table)
}

// AmbientColorOrDefault returns the ambient color, or [0.2 0.2 0.2] if not set.
func (p MaterialProperties) AmbientColorOrDefault() ([3]float64, error) {
	return matAmbientColor.GetOrDefault(p.table)
}

// EmissiveColor returns the emissive color.
func (p MaterialProperties) EmissiveColor() ([3]float64, bool, error) {
	return matEmissiveColor.Get(p.table)
}

// EmissiveColorOrDefault returns the emissive color, or zeros if not set.
func (p MaterialProperties) EmissiveColorOrDefault() ([3]float64, error) {
	return matEmissiveColor.GetOrDefault(p.table)
}

// ShadingModel returns the shading model name.
func (p MaterialProperties) ShadingModel() (string, bool, error) {
	return matShadingModel.Get(p.table)
}

// ShadingModelOrDefault returns the shading model name, or "Phong" if not set.
func (p MaterialProperties) ShadingModelOrDefault() (string, error) {
	return matShadingModel.GetOrDefault(p.table)
}
