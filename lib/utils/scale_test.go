package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleFromList(t *testing.T) {
	s, err := ScaleFromList([]float64{1.5})
	assert.NoError(t, err)
	assert.Equal(t, Scale{1.5, 1.5, 1.5}, s)

	s, err = ScaleFromList([]float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, Scale{1, 2, 3}, s)

	_, err = ScaleFromList(nil)
	assert.Error(t, err)
	_, err = ScaleFromList([]float64{1, 2})
	assert.Error(t, err)
}

func TestScaleDimensions(t *testing.T) {
	dims := Scale{1e-9, 2e-9, 3e-9}.Dimensions("m")
	assert.Equal(t, []any{1e-9, "m"}, dims["x"])
	assert.Equal(t, []any{2e-9, "m"}, dims["y"])
	assert.Equal(t, []any{3e-9, "m"}, dims["z"])
}
