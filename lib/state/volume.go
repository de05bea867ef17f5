package state

import (
	"fmt"

	"github.com/glancix/glancix/lib/shader"
	"github.com/glancix/glancix/lib/utils"
)

// ImageVolumeLayer renders an intensity volume with volume rendering
// enabled, tinted by a single colour.
type ImageVolumeLayer struct {
	Type                        string                    `json:"type"`
	Name                        string                    `json:"name"`
	Source                      LayerSource               `json:"source"`
	Tab                         string                    `json:"tab"`
	Blend                       string                    `json:"blend"`
	Shader                      string                    `json:"shader"`
	ShaderControls              map[string]shader.Control `json:"shaderControls"`
	VolumeRendering             string                    `json:"volumeRendering"`
	VolumeRenderingDepthSamples int                       `json:"volumeRenderingDepthSamples"`
	Visible                     bool                      `json:"visible"`
}

func (l *ImageVolumeLayer) LayerName() string { return l.Name }
func (l *ImageVolumeLayer) LayerType() string { return l.Type }

type ImageVolumeLayerParams struct {
	Source         string
	Name           string
	URL            string
	Colour         string
	Scale          utils.Scale
	Visible        bool
	RenderingDepth int
}

// NewImageVolumeLayer builds a volume-rendered image layer. The colour
// must be #RRGGBB; rendering depth defaults to 10000 samples.
func NewImageVolumeLayer(p ImageVolumeLayerParams) (*ImageVolumeLayer, error) {
	if p.Colour == "" {
		p.Colour = "#FFFFFF"
	}
	if err := utils.ColourValidate(p.Colour); err != nil {
		return nil, err
	}
	if p.RenderingDepth == 0 {
		p.RenderingDepth = 10000
	}
	source, name := setupCreation(p.Source, p.Name, p.URL)

	b := shader.New()
	b.AddToShaderControls(fmt.Sprintf("#uicontrol vec3 color color(default=\"%s\")", p.Colour))
	b.AddToShaderControls("#uicontrol invlerp contrast")
	b.AddToShaderMain("float outputValue = contrast();\nemitRGBA(vec4(color * outputValue, outputValue));")
	out := b.Build()

	return &ImageVolumeLayer{
		Type:                        "image",
		Name:                        name,
		Source:                      LayerSource{URL: "zarr://" + source, Transform: scaleTransform(p.Scale)},
		Tab:                         "rendering",
		Blend:                       "additive",
		Shader:                      out.Shader,
		ShaderControls:              out.ShaderControls,
		VolumeRendering:             "on",
		VolumeRenderingDepthSamples: p.RenderingDepth,
		Visible:                     p.Visible,
	}, nil
}
