// Package color converts between #RRGGBB hex strings and HSL triples.
//
// Hue is in degrees [0, 360), saturation and lightness are percentages in
// [0, 100]. All functions are pure and safe for concurrent use.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidColorFormat is returned when a hex string is not #RRGGBB
var ErrInvalidColorFormat = errors.New("invalid color format")

// DefaultColor is the neutral gray used when a caller's color cannot be parsed
const DefaultColor = "#8E8E93"

// HSL is a hue/saturation/lightness triple
type HSL struct {
	H float64
	S float64
	L float64
}

// Hex returns the #RRGGBB form of the triple
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// Normalize wraps the hue into [0, 360) and clamps saturation and lightness to [0, 100]
func (c HSL) Normalize() HSL {
	return HSL{H: WrapHue(c.H), S: clampPercent(c.S), L: clampPercent(c.L)}
}

// String renders the triple in CSS notation with rounded components
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(c.H))%360, int(math.Round(c.S)), int(math.Round(c.L)))
}

// HSLToHex converts an HSL triple to an uppercase #RRGGBB string.
// Inputs are not expected to be in range: the hue is reduced modulo 360 and
// saturation and lightness are clamped to [0, 100]. NaN components are treated as 0.
func HSLToHex(h, s, l float64) string {
	h = WrapHue(h)
	s = clampPercent(s) / 100
	l = clampPercent(l) / 100

	a := s * math.Min(l, 1-l)
	channel := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return toByte(v)
	}

	return formatHex(channel(0), channel(8), channel(4))
}

// HexToHSL parses a #RRGGBB string (either case) into an HSL triple.
// Achromatic colors yield h = s = 0.
func HexToHSL(hex string) (HSL, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return HSL{}, err
	}

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: clampPercent(l * 100)}, nil
	}

	d := maxC - minC
	s := d / (1 - math.Abs(2*l-1))

	var h float64
	switch maxC {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{
		H: WrapHue(h * 60),
		S: clampPercent(s * 100),
		L: clampPercent(l * 100),
	}, nil
}

// ParseHex validates a #RRGGBB string and returns it in canonical uppercase form
func ParseHex(hex string) (string, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	return formatHex(toByte(r), toByte(g), toByte(b)), nil
}

// WrapHue reduces an angle in degrees into [0, 360)
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// parseHex returns the three channels normalized to [0, 1]
func parseHex(hex string) (r, g, b float64, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("%w: %q is not #RRGGBB", ErrInvalidColorFormat, hex)
	}

	var channels [3]float64
	for i := range channels {
		v, perr := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q contains non-hex digits", ErrInvalidColorFormat, hex)
		}
		channels[i] = float64(v) / 255
	}

	return channels[0], channels[1], channels[2], nil
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}

func formatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
