package object

// DeformerHandle is the category view for objects with the "Deformer" class.
type DeformerHandle struct {
	Handle
}

// AsDeformer is the explicit downcast constructor for deformer objects. It
// fails with a *ClassMismatchError when the handle's class is not
// "Deformer".
func AsDeformer(h Handle) (DeformerHandle, error) {
	if err := requireClass(h, "Deformer"); err != nil {
		return DeformerHandle{}, err
	}
	return DeformerHandle{h}, nil
}

// Object returns the underlying generic handle.
func (h DeformerHandle) Object() Handle { return h.Handle }

func (h DeformerHandle) typedVariant() {}

// TypedDeformer is the closed union over the deformer subtypes known to
// this layer, with UnknownDeformerHandle as the fallback arm.
type TypedDeformer interface {
	// Deformer returns the category-level handle.
	Deformer() DeformerHandle

	typedDeformerVariant()
}

// Typed narrows the deformer into its subtype view by subclass.
func (h DeformerHandle) Typed() TypedDeformer {
	switch h.Subclass() {
	case "Skin":
		return DeformerSkinHandle{h}
	default:
		return UnknownDeformerHandle{h}
	}
}

// DeformerSkinHandle is the subtype view for deformers with the "Skin"
// subclass.
type DeformerSkinHandle struct {
	DeformerHandle
}

// Deformer returns the category-level handle.
func (h DeformerSkinHandle) Deformer() DeformerHandle { return h.DeformerHandle }

func (h DeformerSkinHandle) typedDeformerVariant() {}

// UnknownDeformerHandle is the fallback for deformer subclasses this layer
// does not model, e.g. "BlendShape".
type UnknownDeformerHandle struct {
	DeformerHandle
}

// Deformer returns the category-level handle.
func (h UnknownDeformerHandle) Deformer() DeformerHandle { return h.DeformerHandle }

func (h UnknownDeformerHandle) typedDeformerVariant() {}
