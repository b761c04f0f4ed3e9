package object

import "github.com/vk/fbxdomgo/internal/property"

// ModelNativeTypeName scopes the model property surface.
const ModelNativeTypeName = "FbxNode"

// ModelHandle is the category view for objects with the "Model" class.
type ModelHandle struct {
	Handle
}

// AsModel is the explicit downcast constructor for model objects. It fails
// with a *ClassMismatchError when the handle's class is not "Model".
func AsModel(h Handle) (ModelHandle, error) {
	if err := requireClass(h, "Model"); err != nil {
		return ModelHandle{}, err
	}
	return ModelHandle{h}, nil
}

// Object returns the underlying generic handle.
func (h ModelHandle) Object() Handle { return h.Handle }

func (h ModelHandle) typedVariant() {}

// TypedModel is the closed union over the model subtypes known to this
// layer, with UnknownModelHandle as the fallback arm.
type TypedModel interface {
	// Model returns the category-level handle.
	Model() ModelHandle

	typedModelVariant()
}

// Typed narrows the model into its subtype view by subclass.
func (h ModelHandle) Typed() TypedModel {
	switch h.Subclass() {
	case "Mesh":
		return ModelMeshHandle{h}
	case "Light":
		return ModelLightHandle{h}
	case "Camera":
		return ModelCameraHandle{h}
	case "Null":
		return ModelNullHandle{h}
	default:
		return UnknownModelHandle{h}
	}
}

// ModelMeshHandle is the subtype view for models with the "Mesh" subclass.
type ModelMeshHandle struct {
	ModelHandle
}

// Model returns the category-level handle.
func (h ModelMeshHandle) Model() ModelHandle { return h.ModelHandle }

func (h ModelMeshHandle) typedModelVariant() {}

// ModelLightHandle is the subtype view for models with the "Light" subclass.
type ModelLightHandle struct {
	ModelHandle
}

// Model returns the category-level handle.
func (h ModelLightHandle) Model() ModelHandle { return h.ModelHandle }

func (h ModelLightHandle) typedModelVariant() {}

// ModelCameraHandle is the subtype view for models with the "Camera" subclass.
type ModelCameraHandle struct {
	ModelHandle
}

// Model returns the category-level handle.
func (h ModelCameraHandle) Model() ModelHandle { return h.ModelHandle }

func (h ModelCameraHandle) typedModelVariant() {}

// ModelNullHandle is the subtype view for models with the "Null" subclass.
type ModelNullHandle struct {
	ModelHandle
}

// Model returns the category-level handle.
func (h ModelNullHandle) Model() ModelHandle { return h.ModelHandle }

func (h ModelNullHandle) typedModelVariant() {}

// UnknownModelHandle is the fallback for model subclasses this layer does
// not model.
type UnknownModelHandle struct {
	ModelHandle
}

// Model returns the category-level handle.
func (h UnknownModelHandle) Model() ModelHandle { return h.ModelHandle }

func (h UnknownModelHandle) typedModelVariant() {}

// Properties returns the model property surface, scoped to entries declared
// under the FbxNode native type.
func (h ModelHandle) Properties() ModelProperties {
	return ModelProperties{table: h.PropertiesByTypeName(ModelNativeTypeName)}
}

// Model property contracts.
var (
	mdlTranslation = property.Spec[[3]float64]{
		Name: "Lcl Translation", Description: "local translation vector",
		Load: property.Float64x3(), Default: [3]float64{0, 0, 0},
	}
	mdlRotation = property.Spec[[3]float64]{
		Name: "Lcl Rotation", Description: "local rotation vector",
		Load: property.Float64x3(), Default: [3]float64{0, 0, 0},
	}
	mdlScaling = property.Spec[[3]float64]{
		Name: "Lcl Scaling", Description: "local scaling vector",
		Load: property.Float64x3(), Default: [3]float64{1, 1, 1},
	}
	mdlVisibility = property.Spec[float64]{
		Name: "Visibility", Description: "visibility factor",
		Load: property.Float64(), Default: 1.0,
	}
)

// ModelProperties is the typed accessor surface for model properties.
type ModelProperties struct {
	table *property.Table
}

// Table returns the underlying scoped property table.
func (p ModelProperties) Table() *property.Table { return p.table }

// LocalTranslation returns the local translation vector.
func (p ModelProperties) LocalTranslation() ([3]float64, bool, error) {
	return mdlTranslation.Get(p.table)
}

// LocalTranslationOrDefault returns the local translation vector, or zeros
// if not set.
func (p ModelProperties) LocalTranslationOrDefault() ([3]float64, error) {
	return mdlTranslation.GetOrDefault(p.table)
}

// LocalRotation returns the local rotation vector.
func (p ModelProperties) LocalRotation() ([3]float64, bool, error) {
	return mdlRotation.Get(p.table)
}

// LocalRotationOrDefault returns the local rotation vector, or zeros if not set.
func (p ModelProperties) LocalRotationOrDefault() ([3]float64, error) {
	return mdlRotation.GetOrDefault(p.table)
}

// LocalScaling returns the local scaling vector.
func (p ModelProperties) LocalScaling() ([3]float64, bool, error) {
	return mdlScaling.Get(p.table)
}

// LocalScalingOrDefault returns the local scaling vector, or ones if not set.
func (p ModelProperties) LocalScalingOrDefault() ([3]float64, error) {
	return mdlScaling.GetOrDefault(p.table)
}

// Visibility returns the visibility factor.
func (p ModelProperties) Visibility() (float64, bool, error) {
	return mdlVisibility.Get(p.table)
}

// VisibilityOrDefault returns the visibility factor, or 1.0 if not set.
func (p ModelProperties) VisibilityOrDefault() (float64, error) {
	return mdlVisibility.GetOrDefault(p.table)
}
