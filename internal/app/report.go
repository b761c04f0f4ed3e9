package app

import (
	"context"
	"fmt"

	"github.com/vk/fbxdomgo/internal/ctxlog"
	"github.com/vk/fbxdomgo/internal/document"
	"github.com/vk/fbxdomgo/internal/object"
)

// report writes one line per object plus category detail lines, then a
// summary. Property decode failures are reported inline per property; they
// never abort the rest of the inspection.
func (a *App) report(ctx context.Context, doc document.Document) error {
	logger := ctxlog.FromContext(ctx)

	counts := make(map[string]int)
	for _, id := range doc.ObjectIDs() {
		h, ok := object.Resolve(doc, id)
		if !ok {
			continue
		}

		typed := object.Classify(h)
		kind := variantName(typed)
		counts[categoryName(typed)]++

		subclass := h.Subclass()
		if subclass == "" {
			subclass = "-"
		}
		fmt.Fprintf(a.outW, "object #%d kind=%s class=%s subclass=%s\n", id, kind, h.Class(), subclass)

		switch v := typed.(type) {
		case object.TextureHandle:
			a.reportTexture(v)
		case object.MaterialHandle:
			a.reportMaterial(v)
		case object.ModelHandle:
			a.reportModel(v)
		default:
			// No detail surface for this category.
		}
	}

	fmt.Fprintf(a.outW, "summary:")
	for _, kind := range []string{"Model", "Deformer", "Material", "Texture", "Video", "Unknown"} {
		if counts[kind] > 0 {
			fmt.Fprintf(a.outW, " %s=%d", kind, counts[kind])
		}
	}
	fmt.Fprintln(a.outW)

	logger.Debug("Report written.", "objects", len(doc.ObjectIDs()))
	return nil
}

// categoryName names the top-level category arm for the summary counts.
func categoryName(t object.Typed) string {
	switch t.(type) {
	case object.ModelHandle:
		return "Model"
	case object.DeformerHandle:
		return "Deformer"
	case object.MaterialHandle:
		return "Material"
	case object.TextureHandle:
		return "Texture"
	case object.VideoHandle:
		return "Video"
	default:
		return "Unknown"
	}
}

// variantName names a category variant for the report, narrowing known
// subtypes one level (e.g. "Video/Clip").
func variantName(t object.Typed) string {
	switch v := t.(type) {
	case object.ModelHandle:
		switch v.Typed().(type) {
		case object.ModelMeshHandle:
			return "Model/Mesh"
		case object.ModelLightHandle:
			return "Model/Light"
		case object.ModelCameraHandle:
			return "Model/Camera"
		case object.ModelNullHandle:
			return "Model/Null"
		default:
			return "Model"
		}
	case object.DeformerHandle:
		if _, ok := v.Typed().(object.DeformerSkinHandle); ok {
			return "Deformer/Skin"
		}
		return "Deformer"
	case object.VideoHandle:
		if _, ok := v.Typed().(object.VideoClipHandle); ok {
			return "Video/Clip"
		}
		return "Video"
	case object.MaterialHandle:
		return "Material"
	case object.TextureHandle:
		return "Texture"
	default:
		return "Unknown"
	}
}

func (a *App) reportTexture(h object.TextureHandle) {
	props := h.Properties()

	if alpha, err := props.AlphaOrDefault(); err != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", err)
	} else {
		fmt.Fprintf(a.outW, "  alpha=%g\n", alpha)
	}

	wu, errU := props.WrapModeUOrDefault()
	wv, errV := props.WrapModeVOrDefault()
	if errU != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", errU)
	} else if errV != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", errV)
	} else {
		fmt.Fprintf(a.outW, "  wrap=%s/%s\n", wu, wv)
	}

	if uvSet, err := props.UVSetOrDefault(); err != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", err)
	} else {
		fmt.Fprintf(a.outW, "  uv_set=%s\n", uvSet)
	}

	if blend, err := props.BlendModeOrDefault(); err != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", err)
	} else {
		fmt.Fprintf(a.outW, "  blend=%s\n", blend)
	}

	if clip, ok := h.VideoClip(); ok {
		fmt.Fprintf(a.outW, "  video_clip=#%d\n", clip.ID())
	}
}

func (a *App) reportMaterial(h object.MaterialHandle) {
	props := h.Properties()

	if diffuse, err := props.DiffuseColorOrDefault(); err != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", err)
	} else {
		fmt.Fprintf(a.outW, "  diffuse=%v\n", diffuse)
	}

	if shading, err := props.ShadingModelOrDefault(); err != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", err)
	} else {
		fmt.Fprintf(a.outW, "  shading=%s\n", shading)
	}

	if tex, ok := h.DiffuseTexture(); ok {
		fmt.Fprintf(a.outW, "  diffuse_texture=#%d\n", tex.ID())
	}
}

func (a *App) reportModel(h object.ModelHandle) {
	props := h.Properties()

	if trans, err := props.LocalTranslationOrDefault(); err != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", err)
	} else {
		fmt.Fprintf(a.outW, "  translation=%v\n", trans)
	}

	if vis, err := props.VisibilityOrDefault(); err != nil {
		fmt.Fprintf(a.outW, "  ! %v\n", err)
	} else {
		fmt.Fprintf(a.outW, "  visibility=%g\n", vis)
	}
}
