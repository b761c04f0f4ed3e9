package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fbxdomgo/internal/hcl"
)

// runScene runs a full inspection of the given scene source and returns the
// report output.
func runScene(t *testing.T, scene string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scene.hcl")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0600))

	cfg, err := NewConfig(Config{ScenePath: path, LogFormat: "text", LogLevel: "error"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, cfg, hcl.NewLoader())
	require.NoError(t, a.Run(context.Background(), cfg))

	return out.String()
}

func TestRun_Report(t *testing.T) {
	t.Parallel()

	report := runScene(t, `
object "player" {
  class    = "Model"
  subclass = "Mesh"

  property "Lcl Translation" {
    value = [0, 10, 0]
    type  = "FbxNode"
  }
}

object "clip" {
  class    = "Video"
  subclass = "Clip"
}

object "diffuse" {
  class = "Texture"

  property "Texture alpha" {
    value = 0.5
    type  = "FbxFileTexture"
  }
}

object "mystery" {
  class = "AnimCurve"
}

connection {
  source      = "clip"
  destination = "diffuse"
}
`)

	assert.Contains(t, report, "object #1 kind=Model/Mesh class=Model subclass=Mesh")
	assert.Contains(t, report, "translation=[0 10 0]")
	assert.Contains(t, report, "object #2 kind=Video/Clip")
	assert.Contains(t, report, "object #3 kind=Texture")
	assert.Contains(t, report, "alpha=0.5")
	assert.Contains(t, report, "video_clip=#2")
	assert.Contains(t, report, "object #4 kind=Unknown class=AnimCurve")
	assert.Contains(t, report, "summary: Model=1 Texture=1 Video=1 Unknown=1")
}

func TestRun_ReportDefaults(t *testing.T) {
	t.Parallel()

	report := runScene(t, `
object "bare" {
  class = "Texture"
}
`)

	// Nothing is set; the report shows the documented defaults.
	assert.Contains(t, report, "alpha=1")
	assert.Contains(t, report, "wrap=repeat/repeat")
	assert.Contains(t, report, "uv_set=default")
	assert.Contains(t, report, "blend=additive")
	assert.NotContains(t, report, "video_clip=")
}

func TestRun_ReportDecodeFailure(t *testing.T) {
	t.Parallel()

	report := runScene(t, `
object "broken" {
  class = "Texture"

  property "Texture alpha" {
    value = "opaque"
    type  = "FbxFileTexture"
  }
}

object "fine" {
  class = "Material"
}
`)

	// The bad property is reported inline and the run continues.
	assert.Contains(t, report, "! failed to load texture alpha value")
	assert.Contains(t, report, "object #2 kind=Material")
	assert.Contains(t, report, "shading=Phong")
}

func TestRun_LoadFailure(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{ScenePath: filepath.Join(t.TempDir(), "missing.hcl")})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, hcl.NewLoader())
	err = a.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load scene")
}

func TestNewConfig_RequiresScenePath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)
}
