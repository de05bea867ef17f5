package state

import (
	"fmt"
	"strconv"

	"github.com/glancix/glancix/lib/shader"
	"github.com/glancix/glancix/lib/utils"
)

// AnnotationLayer renders a set of point annotations.
type AnnotationLayer struct {
	Type           string                    `json:"type"`
	Name           string                    `json:"name"`
	Source         LayerSource               `json:"source"`
	Tab            string                    `json:"tab"`
	Shader         string                    `json:"shader"`
	ShaderControls map[string]shader.Control `json:"shaderControls"`
	Visible        bool                      `json:"visible"`
}

func (l *AnnotationLayer) LayerName() string { return l.Name }
func (l *AnnotationLayer) LayerType() string { return l.Type }

type PointLayerParams struct {
	Source string
	Name   string
	URL    string
	// Colour accepts a #RRGGBB string or three integer components.
	Colour               []string
	PointSizeMultiplier  float64
	Scale                utils.Scale
	Visible              bool
	InstanceSegmentation bool
}

// NewPointLayer builds an annotation layer with a point shader carrying
// size and opacity sliders. Instance segmentations colour points from
// their per-point colour property instead of the fixed layer colour.
func NewPointLayer(p PointLayerParams) (*AnnotationLayer, error) {
	colour, err := utils.Vec3Colour(p.Colour)
	if err != nil {
		return nil, err
	}
	source, name := setupCreation(p.Source, p.Name, p.URL)
	if p.PointSizeMultiplier == 0 {
		p.PointSizeMultiplier = 1.0
	}

	b := shader.New()
	b.AddToShaderControls("#uicontrol float pointScale slider(min=0.01, max=2.0, step=0.01)")
	b.AddToShaderControls("#uicontrol float opacity slider(min=0, max=1, step=0.01)")
	if p.InstanceSegmentation {
		b.AddToShaderMain("setColor(vec4(prop_color(), opacity));")
	} else {
		b.AddToShaderMain(fmt.Sprintf("setColor(vec4(vec3(%s) / 255.0, opacity));", colour))
	}
	b.AddToShaderMain(fmt.Sprintf(
		"setPointMarkerSize(pointScale * %s * prop_diameter());",
		strconv.FormatFloat(p.PointSizeMultiplier, 'g', -1, 64)))
	out := b.Build()

	return &AnnotationLayer{
		Type:           "annotation",
		Name:           name,
		Source:         LayerSource{URL: "precomputed://" + source, Transform: scaleTransform(p.Scale)},
		Tab:            "rendering",
		Shader:         out.Shader,
		ShaderControls: out.ShaderControls,
		Visible:        p.Visible,
	}, nil
}
