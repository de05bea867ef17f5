package shader_test

import (
	"encoding/json"
	"testing"

	"github.com/glancix/glancix/lib/shader"
	"github.com/stretchr/testify/assert"
)

func TestBuilderEmpty(t *testing.T) {
	out := shader.New().Build()
	want := "void main() {\n}"
	if out.Shader != want {
		t.Errorf("empty builder: got %q, want %q", out.Shader, want)
	}
	if len(out.ShaderControls) != 0 {
		t.Errorf("empty builder: want no controls, got %v", out.ShaderControls)
	}
}

func TestBuilderRender(t *testing.T) {
	out := shader.New().
		AddToShaderControls("#uicontrol test").
		AddToShaderMain("test_main").
		Build()

	want := "#uicontrol test\n\nvoid main() {\n  test_main\n}"
	if out.Shader != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.Shader, want)
	}
}

func TestBuilderKeepsInsertionOrder(t *testing.T) {
	b := shader.New()
	b.AddToShaderMain("first;")
	b.AddToShaderControls("#uicontrol invlerp a")
	b.AddToShaderMain("second;")
	b.AddToShaderControls("#uicontrol invlerp b")
	b.AddToShaderMain("third;")
	out := b.Build()

	want := "#uicontrol invlerp a\n" +
		"#uicontrol invlerp b\n" +
		"\n" +
		"void main() {\n" +
		"  first;\n" +
		"  second;\n" +
		"  third;\n" +
		"}"
	if out.Shader != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.Shader, want)
	}
}

func TestBuilderMultilineMainFragment(t *testing.T) {
	out := shader.New().
		AddToShaderMain("if (x) {\n  y();\n}").
		Build()

	want := "void main() {\n  if (x) {\n    y();\n  }\n}"
	if out.Shader != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.Shader, want)
	}
}

func TestBuilderBuildIsIdempotent(t *testing.T) {
	b := shader.New().AddToShaderControls("#uicontrol test").AddToShaderMain("x();")
	first := b.Build()
	second := b.Build()
	assert.Equal(t, first.Shader, second.Shader)
	assert.Equal(t, first.ShaderControls, second.ShaderControls)
}

func TestSetControlLastWriteWins(t *testing.T) {
	b := shader.New()
	b.SetControl("contrast", shader.Control{Range: [2]float64{0, 1}, Window: [2]float64{0, 1}})
	b.SetControl("contrast", shader.Control{Range: [2]float64{-1, 1}, Window: [2]float64{-2, 2}})
	out := b.Build()

	assert.Len(t, out.ShaderControls, 1)
	assert.Equal(t, [2]float64{-1, 1}, out.ShaderControls["contrast"].Range)
	assert.Equal(t, [2]float64{-2, 2}, out.ShaderControls["contrast"].Window)
}

func TestControlMarshalVariants(t *testing.T) {
	invlerp, err := json.Marshal(shader.Control{Range: [2]float64{0, 1}, Window: [2]float64{-0.5, 1.5}})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"range":[0,1],"window":[-0.5,1.5]}`, string(invlerp))

	on := true
	toggle, err := json.Marshal(shader.Control{Bool: &on})
	assert.NoError(t, err)
	assert.Equal(t, "true", string(toggle))
}
