package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glancix/glancix/lib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecipe = `
scale: 7.84e-10
units: m
api:
  bind: :8080
scenes:
  run1:
    layers:
      - type: image
        source: run1/tomogram.zarr
        size: {x: 200, y: 200, z: 100}
        mean: 0.5
        rms: 0.1
      - type: segmentation
        source: run1/mask.zarr
        color: "#00FF00"
        visible: false
      - type: annotation
        source: run1/ribosomes.json
        color: ["#FF0000"]
        point_size_multiplier: 1.5
      - type: image_volume
        source: run1/tomogram.zarr
        rendering_depth: 2000
`

func writeRecipe(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseSampleRecipe(t *testing.T) {
	cfg, err := Parse(writeRecipe(t, sampleRecipe))
	require.NoError(t, err)

	assert.Equal(t, utils.UniformScale(7.84e-10), cfg.VoxelScale())
	assert.Equal(t, "m", cfg.Units)
	require.NotNil(t, cfg.Api)
	assert.Equal(t, ":8080", cfg.Api.Bind)

	scene := cfg.Scenes["run1"]
	require.NotNil(t, scene)
	require.Len(t, scene.Layers, 4)

	img, ok := scene.Layers[0].Cfg.(*ImageLayerCfg)
	require.True(t, ok)
	assert.Equal(t, 200.0, img.Size["x"])
	require.NotNil(t, img.Mean)
	assert.Equal(t, 0.5, *img.Mean)
	assert.True(t, scene.Layers[0].IsVisible())

	assert.False(t, scene.Layers[1].IsVisible())

	ann, ok := scene.Layers[2].Cfg.(*AnnotationLayerCfg)
	require.True(t, ok)
	assert.Equal(t, 1.5, ann.PointSizeMultiplier)

	vol, ok := scene.Layers[3].Cfg.(*ImageVolumeLayerCfg)
	require.True(t, ok)
	assert.Equal(t, 2000, vol.RenderingDepth)
}

func TestParseScaleList(t *testing.T) {
	cfg, err := Parse(writeRecipe(t, `
scale: [1.0e-9, 2.0e-9, 3.0e-9]
scenes:
  s:
    layers:
      - type: segmentation
        source: mask.zarr
`))
	require.NoError(t, err)
	assert.Equal(t, utils.Scale{1e-9, 2e-9, 3e-9}, cfg.VoxelScale())
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no scenes", `units: m`},
		{"empty scene", "scenes:\n  s:\n    layers: []"},
		{"unknown layer type", `
scenes:
  s:
    layers:
      - type: mesh
        source: a.zarr
`},
		{"missing source", `
scenes:
  s:
    layers:
      - type: segmentation
`},
		{"bad segmentation colour", `
scenes:
  s:
    layers:
      - type: segmentation
        source: mask.zarr
        color: green
`},
		{"image without size", `
scenes:
  s:
    layers:
      - type: image
        source: t.zarr
`},
		{"mean without rms", `
scenes:
  s:
    layers:
      - type: image
        source: t.zarr
        size: {x: 1, y: 1, z: 1}
        mean: 0.5
`},
		{"two-component annotation colour", `
scenes:
  s:
    layers:
      - type: annotation
        source: p.json
        color: ["255", "0"]
`},
		{"two-component scale", `
scale: [1.0, 2.0]
scenes:
  s:
    layers:
      - type: segmentation
        source: mask.zarr
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(writeRecipe(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestDefaultScaleIsUnit(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, utils.UniformScale(1), cfg.VoxelScale())
}
