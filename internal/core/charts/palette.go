package charts

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	Neutral              = "rgb(150, 150, 150)"
	DefaultPrimary       = "#000000"
	DefaultSecondary     = "#CCCCCC"
	DefaultSecondaryText = "#000000"
	HeatmapLow           = "#FFFFFF"
	HeatmapHigh          = "#0085CE"
)

// SchoolColors is a school's brand palette.
type SchoolColors struct {
	Primary       string `yaml:"primary" json:"primary"`
	Secondary     string `yaml:"secondary" json:"secondary"`
	SecondaryText string `yaml:"secondary_text" json:"secondary_text"`
}

// Palette resolves school colours with fallbacks for anything missing.
type Palette struct {
	schools map[string]SchoolColors
}

// NewPalette copies the per-school colours.
func NewPalette(schools map[string]SchoolColors) Palette {
	p := Palette{schools: make(map[string]SchoolColors, len(schools))}
	for k, v := range schools {
		p.schools[k] = v
	}
	return p
}

// Colors returns the school's palette, filling blanks with defaults.
func (p Palette) Colors(school string) SchoolColors {
	c := p.schools[school]
	if c.Primary == "" {
		c.Primary = DefaultPrimary
	}
	if c.Secondary == "" {
		c.Secondary = DefaultSecondary
	}
	if c.SecondaryText == "" {
		c.SecondaryText = DefaultSecondaryText
	}
	return c
}

// Primary is shorthand for Colors(school).Primary.
func (p Palette) Primary(school string) string {
	return p.Colors(school).Primary
}

// HexToRGB converts "#RRGGBB" (or "RRGGBB") to its components.
func HexToRGB(hex string) (r, g, b uint8, err error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("charts: invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("charts: invalid hex color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Translucent renders a fill colour for hex at the given alpha. Unparseable
// input falls back to the neutral grey.
func Translucent(hex string, alpha float64) string {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		r, g, b = 150, 150, 150
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}

var namedColors = map[string]color.RGBA{
	"black": {A: 255},
	"white": {R: 255, G: 255, B: 255, A: 255},
	"grey":  {R: 128, G: 128, B: 128, A: 255},
	"gray":  {R: 128, G: 128, B: 128, A: 255},
}

// ParseColor accepts "#RRGGBB", "rgb(r, g, b)" and a few colour names.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"), ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("charts: invalid rgb color %q", s)
		}
		var c [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("charts: invalid rgb color %q: %w", s, err)
			}
			c[i] = uint8(v)
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
	}
	r, g, b, err := HexToRGB(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
