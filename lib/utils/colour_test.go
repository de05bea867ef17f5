package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.NoError(t, ColourValidate("#FF0000"))
	assert.NoError(t, ColourValidate("#ffffff"))
	assert.Error(t, ColourValidate("FF0000"))
	assert.Error(t, ColourValidate("#FF000"))
	assert.Error(t, ColourValidate("#FF00000"))
	assert.Error(t, ColourValidate(""))
}

func TestColourParse(t *testing.T) {
	c := ColourParse("#FF8000")
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("got %v, want 255,128,0,255", c)
	}
}

func TestVec3Colour(t *testing.T) {
	cases := []struct {
		name    string
		input   []string
		want    string
		wantErr bool
	}{
		{"nil defaults to white", nil, "255,255,255", false},
		{"hex string", []string{"#FF0000"}, "255,0,0", false},
		{"component triple", []string{"255", "0", "0"}, "255,0,0", false},
		{"preformatted passthrough", []string{"0,128,255"}, "0,128,255", false},
		{"two elements", []string{"255", "0"}, "", true},
		{"four elements", []string{"1", "2", "3", "4"}, "", true},
		{"non-integer component", []string{"red", "0", "0"}, "", true},
		{"bad hex", []string{"#FF00"}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Vec3Colour(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
