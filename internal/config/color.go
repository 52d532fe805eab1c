package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"maze-raycaster/internal/framebuffer"
)

// Color is a packed 0xRRGGBB value written as a "#rrggbb" string in YAML.
type Color uint32

// ParseColor parses a hex color such as "#87ceeb".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q: %w", ErrInvalid, s, err)
	}
	r, g, b := c.RGB255()
	return Color(framebuffer.RGB(r, g, b)), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: color must be a string", ErrInvalid, value.Line)
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// RGB returns the packed surface color.
func (c Color) RGB() uint32 { return uint32(c) }
