package shader

import "fmt"

// ImageParams configures the two-mode contrast shader for image layers.
// Window bounds left nil are derived from the matching contrast limits
// by widening the min/max span 10% on each side.
type ImageParams struct {
	ContrastLimits         [2]float64
	WindowLimits           *[2]float64
	ThreeDeeContrastLimits [2]float64
	ThreeDeeWindowLimits   *[2]float64

	// Control identifiers, embedded verbatim into the generated source
	// and used as shaderControls keys.
	ContrastName         string
	ThreeDeeContrastName string
}

// ImageBuilder renders the fixed cross-section/volume-rendering contrast
// shader. All fragments are registered at construction time; Build only
// adds the two invlerp control entries on top of the base render.
type ImageBuilder struct {
	Builder

	params  ImageParams
	window  [2]float64
	window3 [2]float64
}

// NewImageBuilder registers the uicontrol lines, the inversion helper
// functions and the VOLUME_RENDERING mode switch for both control names.
func NewImageBuilder(params ImageParams) *ImageBuilder {
	b := &ImageBuilder{
		Builder: *New(),
		params:  params,
		window:  windowOrDerived(params.WindowLimits, params.ContrastLimits),
		window3: windowOrDerived(params.ThreeDeeWindowLimits, params.ThreeDeeContrastLimits),
	}

	twodee := params.ContrastName
	threedee := params.ThreeDeeContrastName
	b.AddToShaderControls(invlerpControl(twodee))
	b.AddToShaderControls(invertControl(twodee))
	b.AddToShaderControls(invlerpControl(threedee))
	b.AddToShaderControls(invertControl(threedee))
	b.AddToShaderControls("")
	b.AddToShaderControls(getterFunction(twodee))
	b.AddToShaderControls(getterFunction(threedee))

	b.AddToShaderMain(fmt.Sprintf(
		"float outputValue;\n"+
			"if (VOLUME_RENDERING) {\n"+
			"  outputValue = %s_get();\n"+
			"  emitIntensity(outputValue);\n"+
			"} else {\n"+
			"  outputValue = %s_get();\n"+
			"}\n"+
			"emitGrayscale(outputValue);",
		threedee, twodee))
	return b
}

// Build renders the shader source and attaches the range/window entries
// for both contrast controls. Ranges keep the caller's endpoint order.
func (b *ImageBuilder) Build() Output {
	b.SetControl(b.params.ContrastName, Control{
		Range:  b.params.ContrastLimits,
		Window: b.window,
	})
	b.SetControl(b.params.ThreeDeeContrastName, Control{
		Range:  b.params.ThreeDeeContrastLimits,
		Window: b.window3,
	})
	return b.Builder.Build()
}

func invlerpControl(name string) string {
	return fmt.Sprintf("#uicontrol invlerp %s", name)
}

func invertControl(name string) string {
	return fmt.Sprintf("#uicontrol bool invert_%s checkbox", name)
}

func getterFunction(name string) string {
	return fmt.Sprintf(
		"float %s_get() {\n  return invert_%s ? 1.0 - %s() : %s();\n}",
		name, name, name, name)
}

// windowOrDerived returns the given window bounds, or derives them from
// the contrast limits: the span between min and max is widened by 10% on
// each side. Endpoint order of the limits does not matter.
func windowOrDerived(window *[2]float64, limits [2]float64) [2]float64 {
	if window != nil {
		return *window
	}
	lo, hi := limits[0], limits[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	margin := 0.1 * (hi - lo)
	return [2]float64{lo - margin, hi + margin}
}
