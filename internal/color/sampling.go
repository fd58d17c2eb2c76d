package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Segment is one angular slice of the hue wheel
type Segment struct {
	End   float64
	Hex   string
	Start float64
}

// WheelSegments splits the wheel into count equal slices colored at their mid angle.
// The result depends only on count, s and l; count < 1 is treated as 1.
func WheelSegments(count int, s, l float64) []Segment {
	if count < 1 {
		count = 1
	}
	step := 360.0 / float64(count)
	segments := make([]Segment, count)
	for i := range segments {
		start := float64(i) * step
		segments[i] = Segment{
			End:   start + step,
			Hex:   HSLToHex(start+step/2, s, l),
			Start: start,
		}
	}
	return segments
}

// SegmentAt returns the segment covering angle.
// Segments must come from WheelSegments.
func SegmentAt(segments []Segment, angle float64) Segment {
	if len(segments) == 0 {
		return Segment{}
	}
	step := 360.0 / float64(len(segments))
	i := int(math.Floor(WrapHue(angle) / step))
	if i >= len(segments) {
		i = len(segments) - 1
	}
	return segments[i]
}

// GradientHSL samples steps colors between two HSL triples by interpolating
// each component linearly. Hue takes the short way around the wheel.
func GradientHSL(from, to HSL, steps int) []string {
	if steps < 2 {
		return []string{from.Hex()}
	}

	dh := to.H - from.H
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}

	out := make([]string, steps)
	for i := range out {
		t := float64(i) / float64(steps-1)
		out[i] = HSLToHex(from.H+dh*t, from.S+(to.S-from.S)*t, from.L+(to.L-from.L)*t)
	}
	return out
}

// GradientRGB derives the two endpoint colors with HSLToHex and blends the
// stops in between in RGB space.
func GradientRGB(from, to HSL, steps int) []string {
	if steps < 2 {
		return []string{from.Hex()}
	}

	start, _ := colorful.Hex(from.Hex())
	end, _ := colorful.Hex(to.Hex())

	out := make([]string, steps)
	for i := range out {
		t := float64(i) / float64(steps-1)
		out[i] = hexUpper(start.BlendRgb(end, t).Clamped())
	}
	out[0], out[steps-1] = from.Hex(), to.Hex()
	return out
}

// SaturationGradient is the saturation slider background for a hue and lightness
func SaturationGradient(h, l float64, steps int) []string {
	return GradientHSL(HSL{H: h, S: 0, L: l}, HSL{H: h, S: 100, L: l}, steps)
}

// LightnessGradient is the lightness slider background for a hue and saturation.
// It spans the slider's reachable range only.
func LightnessGradient(h, s, minL, maxL float64, steps int) []string {
	return GradientHSL(HSL{H: h, S: s, L: minL}, HSL{H: h, S: s, L: maxL}, steps)
}

// Over composites fg at the given opacity over bg and returns the opaque result.
// Used to flatten translucent palette roles; the picker itself has no alpha.
func Over(fg, bg string, alpha float64) (string, error) {
	f, err := colorful.Hex(fg)
	if err != nil {
		return "", err
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return "", err
	}
	return hexUpper(b.BlendRgb(f, math.Max(0, math.Min(1, alpha))).Clamped()), nil
}

func hexUpper(c colorful.Color) string {
	r, g, b := c.RGB255()
	return formatHex(r, g, b)
}
