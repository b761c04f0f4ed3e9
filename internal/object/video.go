package object

// VideoHandle is the category view for objects with the "Video" class.
type VideoHandle struct {
	Handle
}

// AsVideo is the explicit downcast constructor for video objects. It fails
// with a *ClassMismatchError when the handle's class is not "Video".
func AsVideo(h Handle) (VideoHandle, error) {
	if err := requireClass(h, "Video"); err != nil {
		return VideoHandle{}, err
	}
	return VideoHandle{h}, nil
}

// Object returns the underlying generic handle.
func (h VideoHandle) Object() Handle { return h.Handle }

func (h VideoHandle) typedVariant() {}

// TypedVideo is the closed union over the video subtypes known to this
// layer, with UnknownVideoHandle as the fallback arm. Callers type-switch
// with a default arm; the known set is extensible.
type TypedVideo interface {
	// Video returns the category-level handle.
	Video() VideoHandle

	typedVideoVariant()
}

// Typed narrows the video into its subtype view by subclass.
func (h VideoHandle) Typed() TypedVideo {
	switch h.Subclass() {
	case "Clip":
		return VideoClipHandle{h}
	default:
		return UnknownVideoHandle{h}
	}
}

// VideoClipHandle is the subtype view for videos with the "Clip" subclass.
type VideoClipHandle struct {
	VideoHandle
}

// Video returns the category-level handle.
func (h VideoClipHandle) Video() VideoHandle { return h.VideoHandle }

func (h VideoClipHandle) typedVideoVariant() {}

// UnknownVideoHandle is the fallback for video subclasses this layer does
// not model. The category-level handle stays fully usable.
type UnknownVideoHandle struct {
	VideoHandle
}

// Video returns the category-level handle.
func (h UnknownVideoHandle) Video() VideoHandle { return h.VideoHandle }

func (h UnknownVideoHandle) typedVideoVariant() {}
