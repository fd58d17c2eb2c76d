package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleFromPoint_Cardinals(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected float64
	}{
		{"right is 0", 20, 10, 0},
		{"below is 90", 10, 20, 90},
		{"left is 180", 0, 10, 180},
		{"above is 270", 10, 0, 270},
		{"diagonal", 20, 20, 45},
		{"center is 0", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AngleFromPoint(tt.px, tt.py, 10, 10), 1e-9)
		})
	}
}

func TestAngleFromPoint_AlwaysInRange(t *testing.T) {
	for x := -50.0; x <= 50; x += 3.3 {
		for y := -50.0; y <= 50; y += 3.3 {
			deg := AngleFromPoint(x, y, 0, 0)
			assert.GreaterOrEqual(t, deg, 0.0)
			assert.Less(t, deg, 360.0)
		}
	}
}

func TestPointFromAngle_InverseOfAngleFromPoint(t *testing.T) {
	const cx, cy, radius = 40.0, 25.0, 17.5
	for deg := 0.0; deg < 360; deg += 0.5 {
		x, y := PointFromAngle(deg, cx, cy, radius)
		got := AngleFromPoint(x, y, cx, cy)

		// 359.9999... may come back as 0
		diff := math.Abs(got - deg)
		diff = math.Min(diff, 360-diff)
		assert.Less(t, diff, 1e-9, "deg=%v got=%v", deg, got)
		assert.InDelta(t, radius, math.Hypot(x-cx, y-cy), 1e-9)
	}
}

func TestIsWithinRing(t *testing.T) {
	tests := []struct {
		name     string
		px       float64
		expected bool
	}{
		{"center", 50, false},
		{"just inside hole beyond tolerance", 50 + 27, false},
		{"inner edge within tolerance", 50 + 29, true},
		{"on ring", 50 + 35, true},
		{"outer edge within tolerance", 50 + 41, true},
		{"outside beyond tolerance", 50 + 43, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsWithinRing(tt.px, 50, 50, 50, 30, 40, 2))
		})
	}
}

func TestRing(t *testing.T) {
	ring := NewRing(100, 10, 2)

	assert.Equal(t, 50.0, ring.CenterX)
	assert.Equal(t, 50.0, ring.CenterY)
	assert.Equal(t, 50.0, ring.OuterRadius)
	assert.Equal(t, 40.0, ring.InnerRadius())
	assert.Equal(t, 45.0, ring.MidRadius())

	assert.True(t, ring.Contains(95, 50))
	assert.True(t, ring.Contains(51.5, 50+39)) // tolerance below inner edge
	assert.False(t, ring.Contains(50, 50))

	x, y := ring.Indicator(0)
	assert.InDelta(t, 95, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
	assert.InDelta(t, 90, ring.Angle(50, 99), 1e-9)
}

func TestNewRing_ClampsThickness(t *testing.T) {
	ring := NewRing(20, 50, -1)
	assert.Equal(t, 10.0, ring.Thickness)
	assert.Equal(t, 0.0, ring.InnerRadius())
	assert.Equal(t, 0.0, ring.Tolerance)
}

func TestPercentFromOffset_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		min, max float64
		expected float64
	}{
		{"start", 0, 0, 100, 0},
		{"middle", 50, 0, 100, 25},
		{"end", 200, 0, 100, 100},
		{"before start", -30, 0, 100, 0},
		{"after end", 500, 0, 100, 100},
		{"lightness floor", 0, LightnessMin, LightnessMax, 10},
		{"lightness ceiling", 200, LightnessMin, LightnessMax, 90},
		{"lightness far left", -1000, LightnessMin, LightnessMax, 10},
		{"lightness far right", 1000, LightnessMin, LightnessMax, 90},
		{"lightness middle", 100, LightnessMin, LightnessMax, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentFromOffset(tt.offset, 200, tt.min, tt.max), 1e-9)
		})
	}
}

func TestPercentFromOffset_DegenerateTrack(t *testing.T) {
	assert.Equal(t, 10.0, PercentFromOffset(5, 0, 10, 90))
	assert.Equal(t, 0.0, PercentFromOffset(5, -3, 0, 100))
	assert.Equal(t, 0.0, PercentFromOffset(math.NaN(), 100, 0, 100))
}

func TestOffsetFromPercent(t *testing.T) {
	assert.InDelta(t, 50, OffsetFromPercent(25, 200, 0, 100), 1e-9)
	assert.InDelta(t, 20, OffsetFromPercent(0, 200, LightnessMin, LightnessMax), 1e-9)
	assert.InDelta(t, 180, OffsetFromPercent(100, 200, LightnessMin, LightnessMax), 1e-9)
	assert.Equal(t, 0.0, OffsetFromPercent(50, 0, 0, 100))

	for v := 0.0; v <= 100; v += 5 {
		offset := OffsetFromPercent(v, 40, SaturationMin, SaturationMax)
		assert.InDelta(t, v, PercentFromOffset(offset, 40, SaturationMin, SaturationMax), 1e-9)
	}
}

func TestTrack(t *testing.T) {
	track := Track{Length: 40, OriginX: 10, OriginY: 30, ThumbRadius: 1}

	assert.True(t, track.Contains(10, 30))
	assert.True(t, track.Contains(9, 30.5))
	assert.True(t, track.Contains(51, 29))
	assert.False(t, track.Contains(52, 30))
	assert.False(t, track.Contains(20, 32))
	assert.Equal(t, 15.0, track.Offset(25))
}
