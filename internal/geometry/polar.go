// Package geometry maps pointer positions onto the hue ring and the slider tracks.
package geometry

import "math"

// DefaultTolerance is the extra margin around the ring that still counts as a hit
const DefaultTolerance = 1.5

// Ring is the annular hue control, fixed for the lifetime of a mounted picker
type Ring struct {
	CenterX     float64
	CenterY     float64
	OuterRadius float64
	Thickness   float64
	Tolerance   float64
}

// NewRing builds a ring for a square control of the given size.
// The center is at (size/2, size/2).
func NewRing(size, thickness, tolerance float64) Ring {
	outer := size / 2
	thickness = math.Max(0, math.Min(thickness, outer))
	return Ring{
		CenterX:     size / 2,
		CenterY:     size / 2,
		OuterRadius: outer,
		Thickness:   thickness,
		Tolerance:   math.Max(0, tolerance),
	}
}

// InnerRadius is the radius of the ring's hole
func (r Ring) InnerRadius() float64 {
	return r.OuterRadius - r.Thickness
}

// MidRadius is the radius the selection indicator sits on
func (r Ring) MidRadius() float64 {
	return r.OuterRadius - r.Thickness/2
}

// Contains reports whether a point hits the ring including its tolerance
func (r Ring) Contains(px, py float64) bool {
	return IsWithinRing(px, py, r.CenterX, r.CenterY, r.InnerRadius(), r.OuterRadius, r.Tolerance)
}

// Angle returns the hue angle of a point relative to the ring center
func (r Ring) Angle(px, py float64) float64 {
	return AngleFromPoint(px, py, r.CenterX, r.CenterY)
}

// Indicator returns where the selection indicator for a hue is drawn
func (r Ring) Indicator(degrees float64) (x, y float64) {
	return PointFromAngle(degrees, r.CenterX, r.CenterY, r.MidRadius())
}

// AngleFromPoint returns the angle in degrees [0, 360) of (px, py) around the center.
// 0° points right of the center; y grows downwards, so 90° is below it.
func AngleFromPoint(px, py, centerX, centerY float64) float64 {
	dx := px - centerX
	dy := py - centerY
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	deg = math.Mod(deg+360, 360)
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// IsWithinRing reports whether the point lies in [inner-tolerance, outer+tolerance] from the center
func IsWithinRing(px, py, centerX, centerY, innerRadius, outerRadius, tolerance float64) bool {
	distance := math.Hypot(px-centerX, py-centerY)
	return distance >= innerRadius-tolerance && distance <= outerRadius+tolerance
}

// PointFromAngle places a point on the circle of the given radius at the given angle
func PointFromAngle(degrees, centerX, centerY, radius float64) (x, y float64) {
	rad := degrees * math.Pi / 180
	return centerX + radius*math.Cos(rad), centerY + radius*math.Sin(rad)
}
