// Package shader assembles neuroglancer GLSL shader source and the
// matching shaderControls metadata for generated viewer layers.
package shader

import (
	"encoding/json"
	"strings"
)

// Control is the UI metadata for one named shader control. A control is
// either an invlerp range (with slider window bounds) or a plain boolean
// toggle; Bool set means the boolean variant wins during marshaling.
type Control struct {
	Range  [2]float64
	Window [2]float64
	Bool   *bool
}

func (c Control) MarshalJSON() ([]byte, error) {
	if c.Bool != nil {
		return json.Marshal(*c.Bool)
	}
	return json.Marshal(struct {
		Range  [2]float64 `json:"range"`
		Window [2]float64 `json:"window"`
	}{c.Range, c.Window})
}

// Output is the rendered shader plus its controls object, shaped the way
// the viewer expects it inside a layer definition.
type Output struct {
	Shader         string             `json:"shader"`
	ShaderControls map[string]Control `json:"shaderControls"`
}

// Builder accumulates shader source fragments in two regions: the
// pre-main region (uicontrol directives and helper functions) and the
// main body. Fragments keep their insertion order and are never
// deduplicated or validated; multi-line fragments pass through as-is.
//
// A Builder is not safe for concurrent mutation.
type Builder struct {
	preMain  []string
	mainBody []string
	controls map[string]Control
}

func New() *Builder {
	return &Builder{controls: make(map[string]Control)}
}

// AddToShaderControls appends a fragment to the pre-main region.
func (b *Builder) AddToShaderControls(fragment string) *Builder {
	b.preMain = append(b.preMain, fragment)
	return b
}

// AddToShaderMain appends a fragment to the main body.
func (b *Builder) AddToShaderMain(fragment string) *Builder {
	b.mainBody = append(b.mainBody, fragment)
	return b
}

// SetControl records UI metadata under a control name. Reusing a name
// overwrites the previous entry.
func (b *Builder) SetControl(name string, c Control) *Builder {
	b.controls[name] = c
	return b
}

// Build renders the accumulated fragments into a single shader source:
// the pre-main fragments joined by newlines, a blank line, then the main
// body wrapped in void main() with every line indented two spaces. Build
// is a pure read and can be called repeatedly.
func (b *Builder) Build() Output {
	var sb strings.Builder
	sb.WriteString(strings.Join(b.preMain, "\n"))
	sb.WriteString("\n\nvoid main() {\n")
	for _, fragment := range b.mainBody {
		sb.WriteString(indentLines(fragment, "  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")

	controls := make(map[string]Control, len(b.controls))
	for name, c := range b.controls {
		controls[name] = c
	}
	return Output{
		Shader:         strings.TrimSpace(sb.String()),
		ShaderControls: controls,
	}
}

func indentLines(fragment, prefix string) string {
	lines := strings.Split(fragment, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
