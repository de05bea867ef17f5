package utils

import "fmt"

// Scale is the physical size of one voxel along x, y and z.
type Scale [3]float64

// UniformScale repeats a scalar voxel size along all three axes.
func UniformScale(v float64) Scale {
	return Scale{v, v, v}
}

// ScaleFromList normalizes scalar-or-triple scale input.
func ScaleFromList(values []float64) (Scale, error) {
	switch len(values) {
	case 1:
		return UniformScale(values[0]), nil
	case 3:
		return Scale{values[0], values[1], values[2]}, nil
	default:
		return Scale{}, fmt.Errorf("scale needs 1 or 3 components, got %d", len(values))
	}
}

// Dimensions renders the scale as the viewer's dimension mapping,
// axis name to [resolution, unit].
func (s Scale) Dimensions(units string) map[string][]any {
	return map[string][]any{
		"x": {s[0], units},
		"y": {s[1], units},
		"z": {s[2], units},
	}
}
