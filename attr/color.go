// Package attr implements per-cell SGR state: colors and boolean
// rendering marks.
package attr

import colorful "github.com/lucasb-eyer/go-colorful"

// CCode discriminates Color's variant.
type CCode uint8

const (
	// DefaultCCode is the color inherited from the page/terminal default
	// (not an explicit ANSI16/256/RGB value).
	DefaultCCode CCode = iota
	// ANSI16 is one of the 16 standard dark/light ANSI colors.
	ANSI16
	// Indexed256 is an 8-bit palette index.
	Indexed256
	// RGB is a 24-bit true color.
	RGB
)

// ANSI16 color names, dark (0-7) then light/bright (8-15).
const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	LightBlack
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	LightWhite
)

// NamedColor is one of the 16 standard ANSI colors.
type NamedColor uint8

// Color is a discriminated triple: {CCode, C256, R, G, B}. C256 is valid
// iff CCode == Indexed256; R/G/B are valid iff CCode == RGB; Named is
// valid iff CCode == ANSI16.
type Color struct {
	CCode CCode
	Named NamedColor
	C256  uint8
	R, G, B uint8
}

// DefaultColor is the zero Color: inherits the terminal's default.
var DefaultColor = Color{CCode: DefaultCCode}

// NewNamed builds an ANSI16 color.
func NewNamed(n NamedColor) Color { return Color{CCode: ANSI16, Named: n} }

// NewIndexed builds an 8-bit indexed color.
func NewIndexed(idx uint8) Color { return Color{CCode: Indexed256, C256: idx} }

// NewRGB builds a 24-bit true color.
func NewRGB(r, g, b uint8) Color { return Color{CCode: RGB, R: r, G: g, B: b} }

// namedRGB is the default rendering of the 16 standard colors, matching
// the classic xterm palette (grounded in cliofy-govte/ansi.go's
// NamedColor.ToRgb).
var namedRGB = [16][3]uint8{
	Black:        {0, 0, 0},
	Red:          {170, 0, 0},
	Green:        {0, 170, 0},
	Yellow:       {170, 85, 0},
	Blue:         {0, 0, 170},
	Magenta:      {170, 0, 170},
	Cyan:         {0, 170, 170},
	White:        {170, 170, 170},
	LightBlack:   {85, 85, 85},
	LightRed:     {255, 85, 85},
	LightGreen:   {85, 255, 85},
	LightYellow:  {255, 255, 85},
	LightBlue:    {85, 85, 255},
	LightMagenta: {255, 85, 255},
	LightCyan:    {85, 255, 255},
	LightWhite:   {255, 255, 255},
}

// Indexed256RGB resolves one of the 256 xterm palette slots to RGB using
// the standard fixed layout: 0-15 are the 16 named ANSI colors, 16-231 a
// 6x6x6 color cube, and 232-255 a 24-step grayscale ramp.
func Indexed256RGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		rgb := namedRGB[idx]
		return rgb[0], rgb[1], rgb[2]
	case idx < 232:
		levels := [6]uint8{0, 95, 135, 175, 215, 255}
		i := idx - 16
		return levels[i/36], levels[(i/6)%6], levels[i%6]
	default:
		v := 8 + (idx-232)*10
		return v, v, v
	}
}

// ToRGB resolves c to concrete RGB against the supplied default
// foreground/background (used when CCode == DefaultCCode) and 256-color
// palette lookup function (used when CCode == Indexed256).
func (c Color) ToRGB(fallback colorful.Color, palette func(uint8) colorful.Color) colorful.Color {
	switch c.CCode {
	case ANSI16:
		rgb := namedRGB[c.Named]
		return colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
	case Indexed256:
		if palette != nil {
			return palette(c.C256)
		}
		return fallback
	case RGB:
		return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	default:
		return fallback
	}
}

// Blend linearly interpolates between two colors in RGB space, resolving
// each against the given fallback/palette first. t=0 returns c, t=1
// returns other.
func (c Color) Blend(other Color, t float64, fallback colorful.Color, palette func(uint8) colorful.Color) Color {
	a := c.ToRGB(fallback, palette)
	b := other.ToRGB(fallback, palette)
	blended := a.BlendRgb(b, t)
	r, g, b8 := blended.RGB255()
	return NewRGB(r, g, b8)
}

// RelativeLuminance reports c's WCAG relative luminance (0=black,
// 1=white), used by callers that need to pick a readable contrasting
// color (e.g. DECSCA protected-cell rendering, reverse-video defaults).
func (c Color) RelativeLuminance(fallback colorful.Color, palette func(uint8) colorful.Color) float64 {
	rgb := c.ToRGB(fallback, palette)
	r, g, b := rgb.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
