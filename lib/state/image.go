package state

import (
	"math"

	"github.com/glancix/glancix/lib/shader"
	"github.com/glancix/glancix/lib/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// avgCrossSectionRenderHeight is the cross-section viewport height (in
// data units) the computed crossSectionScale hint is calibrated against.
const avgCrossSectionRenderHeight = 400.0

// ImageLayer renders an intensity volume in cross-section mode. The
// underscore-prefixed fields are hints for the scene combiner, not part
// of the viewer's layer schema proper.
type ImageLayer struct {
	Type              string                    `json:"type"`
	Name              string                    `json:"name"`
	Source            LayerSource               `json:"source"`
	Opacity           float64                   `json:"opacity"`
	Tab               string                    `json:"tab"`
	Shader            string                    `json:"shader"`
	ShaderControls    map[string]shader.Control `json:"shaderControls"`
	VolumeRendering   string                    `json:"volumeRendering"`
	Visible           bool                      `json:"visible"`
	Position          [3]float64                `json:"_position"`
	CrossSectionScale float64                   `json:"_crossSectionScale"`
}

func (l *ImageLayer) LayerName() string { return l.Name }
func (l *ImageLayer) LayerType() string { return l.Type }

type ImageLayerParams struct {
	Source string
	Name   string
	URL    string
	Scale  utils.Scale
	// Size and Start describe the volume extent per axis name; Start
	// defaults to the origin.
	Size  map[string]float64
	Start map[string]float64
	// Mean and RMS of the volume's intensity, when known, pick the
	// contrast range; otherwise [0, 1] is used.
	Mean    *float64
	RMS     *float64
	Visible bool
}

// NewImageLayer builds an image layer with the two-mode contrast shader
// and the combiner hints derived from the volume extent.
func NewImageLayer(p ImageLayerParams) *ImageLayer {
	source, name := setupCreation(p.Source, p.Name, p.URL)

	limits := [2]float64{0.0, 1.0}
	if p.Mean != nil && p.RMS != nil {
		limits = [2]float64{*p.Mean - 5.0**p.RMS, *p.Mean + 5.0**p.RMS}
	}

	out := shader.NewImageBuilder(shader.ImageParams{
		ContrastLimits:         limits,
		ThreeDeeContrastLimits: limits,
		ContrastName:           "contrast",
		ThreeDeeContrastName:   "contrast3D",
	}).Build()

	start := axisVec(p.Start)
	size := axisVec(p.Size)
	center := start.Add(size.Mul(0.5))

	return &ImageLayer{
		Type:              "image",
		Name:              name,
		Source:            LayerSource{URL: "zarr://" + source, Transform: scaleTransform(p.Scale)},
		Opacity:           1,
		Tab:               "rendering",
		Shader:            out.Shader,
		ShaderControls:    out.ShaderControls,
		VolumeRendering:   "off",
		Visible:           p.Visible,
		Position:          [3]float64{center.X(), center.Y(), center.Z()},
		CrossSectionScale: math.Max(size.X(), math.Max(size.Y(), size.Z())) / avgCrossSectionRenderHeight,
	}
}

func axisVec(m map[string]float64) mgl64.Vec3 {
	return mgl64.Vec3{m["x"], m["y"], m["z"]}
}
