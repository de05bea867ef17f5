// Package state builds the JSON state documents consumed by the
// web-based volumetric viewer: one object per layer plus the combined
// scene document. The shapes match the viewer's schema by construction;
// nothing here validates against it.
package state

import (
	"path/filepath"
	"strings"

	"github.com/glancix/glancix/lib/utils"
)

// Layer is one renderable entry in a scene's layer list.
type Layer interface {
	LayerName() string
	LayerType() string
}

// LayerSource is the source block of a layer definition.
type LayerSource struct {
	URL       string     `json:"url"`
	Transform *Transform `json:"transform,omitempty"`
}

type Transform struct {
	OutputDimensions map[string][]any `json:"outputDimensions"`
}

// layerUnits is the unit attached to per-layer output dimensions; the
// scene-level unit is chosen when combining.
const layerUnits = "m"

func scaleTransform(scale utils.Scale) *Transform {
	return &Transform{OutputDimensions: scale.Dimensions(layerUnits)}
}

// setupCreation fills the defaults shared by every layer constructor:
// the name falls back to the source path stem, and the source gets the
// base URL prefixed with a "/" separator only when a URL is given.
func setupCreation(source, name, url string) (fullSource, finalName string) {
	if name == "" {
		base := filepath.Base(source)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	sep := ""
	if url != "" {
		sep = "/"
	}
	return url + sep + source, name
}
