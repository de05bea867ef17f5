package utils

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

var hexColour = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColourValidate checks the #RRGGBB form used in viewer states.
func ColourValidate(c string) error {
	if !hexColour.MatchString(c) {
		return fmt.Errorf("colour must be a hex string e.g. #FF0000, got %q", c)
	}
	return nil
}

func ColourParse(s string) (c color.RGBA) {
	fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	c.A = 255
	return
}

// Vec3Colour turns recipe colour input into the "R,G,B" component string
// embedded into generated point shaders. Accepted forms: nil (white), a
// single #RRGGBB string, a single preformatted component string, or
// exactly three integer components.
func Vec3Colour(input []string) (string, error) {
	switch len(input) {
	case 0:
		return "255,255,255", nil
	case 1:
		if strings.HasPrefix(input[0], "#") {
			if err := ColourValidate(input[0]); err != nil {
				return "", err
			}
			c := ColourParse(input[0])
			return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B), nil
		}
		return input[0], nil
	case 3:
		parts := make([]string, 3)
		for i, v := range input {
			n, err := strconv.Atoi(v)
			if err != nil {
				return "", fmt.Errorf("colour component %q is not an integer", v)
			}
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("colour must be a list of 3 values or a hex colour string, got %v", input)
	}
}
