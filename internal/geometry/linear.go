package geometry

import "math"

// Slider ranges. Lightness stops short of black and white so that hue and
// saturation stay visible at every slider position.
const (
	LightnessMax  = 90
	LightnessMin  = 10
	SaturationMax = 100
	SaturationMin = 0
)

// Track is a horizontal slider, fixed for the lifetime of a mounted picker
type Track struct {
	Length      float64
	OriginX     float64
	OriginY     float64
	ThumbRadius float64
}

// Contains reports whether a point hits the track or its thumb margin
func (t Track) Contains(px, py float64) bool {
	return px >= t.OriginX-t.ThumbRadius &&
		px <= t.OriginX+t.Length+t.ThumbRadius &&
		math.Abs(py-t.OriginY) <= t.ThumbRadius
}

// Offset returns the x offset of a point along the track
func (t Track) Offset(px float64) float64 {
	return px - t.OriginX
}

// PercentFromOffset maps an offset along a track to a value in [minValue, maxValue].
// A non-positive track length yields minValue.
func PercentFromOffset(offsetX, trackLength, minValue, maxValue float64) float64 {
	if trackLength <= 0 || math.IsNaN(offsetX) {
		return minValue
	}
	return clamp(offsetX/trackLength*100, minValue, maxValue)
}

// OffsetFromPercent maps a value back to an offset along the track.
// The value is clamped to [minValue, maxValue] first so the thumb never leaves the reachable range.
func OffsetFromPercent(value, trackLength, minValue, maxValue float64) float64 {
	if trackLength <= 0 {
		return 0
	}
	return clamp(value, minValue, maxValue) / 100 * trackLength
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
