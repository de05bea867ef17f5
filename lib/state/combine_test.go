package state_test

import (
	"encoding/json"
	"testing"

	"github.com/glancix/glancix/lib/state"
	"github.com/glancix/glancix/lib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineUsesImageLayerHints(t *testing.T) {
	img := state.NewImageLayer(state.ImageLayerParams{
		Source:  "run1/tomogram.zarr",
		Scale:   utils.UniformScale(1e-9),
		Size:    map[string]float64{"x": 200, "y": 400, "z": 100},
		Visible: true,
	})
	seg, err := state.NewSegmentationLayer(state.SegmentationLayerParams{
		Source: "run1/mask.zarr",
		Colour: "#00FF00",
		Scale:  utils.UniformScale(1e-9),
	})
	require.NoError(t, err)

	scene, err := state.Combine([]state.Layer{seg, img}, utils.UniformScale(1e-9), "m")
	require.NoError(t, err)

	assert.Equal(t, "mask", scene.SelectedLayer.Layer)
	assert.True(t, scene.SelectedLayer.Visible)
	require.NotNil(t, scene.Position)
	assert.Equal(t, [3]float64{100, 200, 50}, *scene.Position)
	assert.Equal(t, 1.0, scene.CrossSectionScale, "largest dimension over render height")
}

func TestCombineWithoutImageLayer(t *testing.T) {
	seg, err := state.NewSegmentationLayer(state.SegmentationLayerParams{
		Source: "run1/mask.zarr",
		Scale:  utils.UniformScale(1e-9),
	})
	require.NoError(t, err)

	scene, err := state.Combine([]state.Layer{seg}, utils.UniformScale(1e-9), "")
	require.NoError(t, err)
	assert.Nil(t, scene.Position)
	assert.Equal(t, 1.8, scene.CrossSectionScale)

	raw, err := json.Marshal(scene)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	_, hasPosition := doc["position"]
	assert.False(t, hasPosition, "position must be absent without an image layer")
	assert.Equal(t, "4panel", doc["layout"])
	assert.Equal(t, "#000000", doc["crossSectionBackgroundColor"])
	assert.Equal(t, []any{0.173, -0.0126, -0.0015, 0.984},
		toFloats(t, doc["projectionOrientation"]))
}

func TestCombineRejectsEmptyLayerList(t *testing.T) {
	_, err := state.Combine(nil, utils.UniformScale(1), "m")
	assert.Error(t, err)
}

func TestCombineDimensions(t *testing.T) {
	seg, err := state.NewSegmentationLayer(state.SegmentationLayerParams{
		Source: "mask.zarr",
		Scale:  utils.Scale{1, 2, 3},
	})
	require.NoError(t, err)
	scene, err := state.Combine([]state.Layer{seg}, utils.Scale{1, 2, 3}, "nm")
	require.NoError(t, err)

	assert.Equal(t, []any{1.0, "nm"}, scene.Dimensions["x"])
	assert.Equal(t, []any{2.0, "nm"}, scene.Dimensions["y"])
	assert.Equal(t, []any{3.0, "nm"}, scene.Dimensions["z"])
}

func toFloats(t *testing.T, v any) []any {
	t.Helper()
	list, ok := v.([]any)
	require.True(t, ok, "expected a JSON array, got %T", v)
	return list
}
