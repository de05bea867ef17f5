package state

import (
	"fmt"

	"github.com/glancix/glancix/lib/utils"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultCrossSectionScale = 1.8
	crossSectionBackground   = "#000000"
	defaultLayout            = "4panel"
	defaultUnits             = "m"
)

// defaultOrientation tilts the projection view slightly off the z axis.
var defaultOrientation = mgl64.Quat{
	W: 0.984,
	V: mgl64.Vec3{0.173, -0.0126, -0.0015},
}

// Scene is the combined state document handed to the viewer.
type Scene struct {
	Dimensions                  map[string][]any `json:"dimensions"`
	Position                    *[3]float64      `json:"position,omitempty"`
	CrossSectionScale           float64          `json:"crossSectionScale"`
	ProjectionOrientation       [4]float64       `json:"projectionOrientation"`
	Layers                      []Layer          `json:"layers"`
	SelectedLayer               SelectedLayer    `json:"selectedLayer"`
	CrossSectionBackgroundColor string           `json:"crossSectionBackgroundColor"`
	Layout                      string           `json:"layout"`
}

type SelectedLayer struct {
	Visible bool   `json:"visible"`
	Layer   string `json:"layer"`
}

// Combine merges per-layer documents into a scene. The first layer is
// selected; when an image layer is present, its position and
// cross-section hints become the scene defaults, otherwise those keys
// stay absent.
func Combine(layers []Layer, scale utils.Scale, units string) (*Scene, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("a scene needs at least one layer")
	}
	if units == "" {
		units = defaultUnits
	}
	s := &Scene{
		Dimensions:                  scale.Dimensions(units),
		CrossSectionScale:           defaultCrossSectionScale,
		ProjectionOrientation:       quatComponents(defaultOrientation),
		Layers:                      layers,
		SelectedLayer:               SelectedLayer{Visible: true, Layer: layers[0].LayerName()},
		CrossSectionBackgroundColor: crossSectionBackground,
		Layout:                      defaultLayout,
	}
	for _, l := range layers {
		if img, ok := l.(*ImageLayer); ok {
			position := img.Position
			s.Position = &position
			s.CrossSectionScale = img.CrossSectionScale
			break
		}
	}
	return s, nil
}

// quatComponents renders a quaternion in the viewer's [x, y, z, w] order.
func quatComponents(q mgl64.Quat) [4]float64 {
	return [4]float64{q.V.X(), q.V.Y(), q.V.Z(), q.W}
}
