package settings

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGBA is one candidate color: four float channels in [0, 1].
// Channel order is red, green, blue, alpha.
type RGBA [4]float64

// White is the default color assigned to newly created entries.
func White() RGBA {
	return RGBA{1, 1, 1, 1}
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c RGBA) Clamped() RGBA {
	for i, v := range c {
		if v < 0 {
			c[i] = 0
		} else if v > 1 {
			c[i] = 1
		}
	}
	return c
}

// NRGBA converts the color to 8-bit non-premultiplied form for rasterizing.
func (c RGBA) NRGBA() color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: uint8(c[3]*255 + 0.5),
	}
}

// Hex renders the color as "#rrggbb", or "#rrggbbaa" when the alpha
// channel is not fully opaque.
func (c RGBA) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" (leading '#' optional) into an
// RGBA. A missing alpha component defaults to fully opaque.
func ParseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	if len(h) == 6 {
		v = v<<8 | 0xff
	}

	return RGBA{
		float64(v>>24&0xff) / 255,
		float64(v>>16&0xff) / 255,
		float64(v>>8&0xff) / 255,
		float64(v&0xff) / 255,
	}, nil
}

// UnmarshalYAML accepts either a hex scalar ("#ff8800") or a sequence of
// three or four floats ([1, 0.5, 0] or [1, 0.5, 0, 1]).
func (c *RGBA) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil

	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return err
		}
		if len(vals) != 3 && len(vals) != 4 {
			return fmt.Errorf("%w: want 3 or 4 channels, got %d", ErrInvalidColor, len(vals))
		}
		out := White()
		copy(out[:], vals)
		*c = out.Clamped()
		return nil

	default:
		return fmt.Errorf("%w: unexpected YAML node", ErrInvalidColor)
	}
}

// MarshalYAML emits the compact hex scalar form.
func (c RGBA) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
