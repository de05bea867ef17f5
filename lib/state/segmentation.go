package state

import "github.com/glancix/glancix/lib/utils"

// SegmentationLayer renders a labelled mask volume.
type SegmentationLayer struct {
	Type                string      `json:"type"`
	Name                string      `json:"name"`
	Source              LayerSource `json:"source"`
	Tab                 string      `json:"tab"`
	SelectedAlpha       float64     `json:"selectedAlpha"`
	HoverHighlight      bool        `json:"hoverHighlight"`
	Segments            []int       `json:"segments"`
	SegmentDefaultColor string      `json:"segmentDefaultColor"`
	Visible             bool        `json:"visible"`
}

func (l *SegmentationLayer) LayerName() string { return l.Name }
func (l *SegmentationLayer) LayerType() string { return l.Type }

type SegmentationLayerParams struct {
	Source  string
	Name    string
	URL     string
	Colour  string
	Scale   utils.Scale
	Visible bool
}

// NewSegmentationLayer builds a segmentation mask layer coloured with a
// single #RRGGBB default colour.
func NewSegmentationLayer(p SegmentationLayerParams) (*SegmentationLayer, error) {
	if p.Colour == "" {
		p.Colour = "#FFFFFF"
	}
	if err := utils.ColourValidate(p.Colour); err != nil {
		return nil, err
	}
	source, name := setupCreation(p.Source, p.Name, p.URL)
	return &SegmentationLayer{
		Type:                "segmentation",
		Name:                name,
		Source:              LayerSource{URL: "zarr://" + source, Transform: scaleTransform(p.Scale)},
		Tab:                 "rendering",
		SelectedAlpha:       1,
		HoverHighlight:      false,
		Segments:            []int{1},
		SegmentDefaultColor: p.Colour,
		Visible:             p.Visible,
	}, nil
}
