package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheelSegments(t *testing.T) {
	segments := WheelSegments(6, 100, 50)
	require.Len(t, segments, 6)

	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 60.0, segments[0].End)
	assert.Equal(t, "#FF8000", segments[0].Hex) // sampled at 30°
	assert.Equal(t, 300.0, segments[5].Start)
	assert.Equal(t, 360.0, segments[5].End)

	for _, seg := range segments {
		assert.Regexp(t, hexPattern, seg.Hex)
	}
}

func TestWheelSegments_IsPure(t *testing.T) {
	assert.Equal(t, WheelSegments(36, 80, 40), WheelSegments(36, 80, 40))
	assert.Len(t, WheelSegments(0, 100, 50), 1)
}

func TestSegmentAt(t *testing.T) {
	segments := WheelSegments(6, 100, 50)

	tests := []struct {
		name  string
		angle float64
		start float64
	}{
		{"zero", 0, 0},
		{"inside first", 59.9, 0},
		{"boundary", 60, 60},
		{"last", 359.99, 300},
		{"negative wraps", -10, 300},
		{"above 360 wraps", 370, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.start, SegmentAt(segments, tt.angle).Start)
		})
	}

	assert.Equal(t, Segment{}, SegmentAt(nil, 10))
}

func TestGradientHSL_TakesShortHueArc(t *testing.T) {
	stops := GradientHSL(HSL{H: 0, S: 100, L: 50}, HSL{H: 240, S: 100, L: 50}, 3)
	assert.Equal(t, []string{"#FF0000", "#FF00FF", "#0000FF"}, stops)
}

func TestGradientRGB_BlendsChannels(t *testing.T) {
	stops := GradientRGB(HSL{H: 0, S: 100, L: 50}, HSL{H: 240, S: 100, L: 50}, 3)
	assert.Equal(t, []string{"#FF0000", "#800080", "#0000FF"}, stops)
}

func TestGradients_SingleStep(t *testing.T) {
	from := HSL{H: 120, S: 100, L: 50}
	assert.Equal(t, []string{"#00FF00"}, GradientHSL(from, HSL{}, 1))
	assert.Equal(t, []string{"#00FF00"}, GradientRGB(from, HSL{}, 0))
}

func TestSliderGradients(t *testing.T) {
	assert.Equal(t, []string{"#808080", "#FF0000"}, SaturationGradient(0, 50, 2))

	lightness := LightnessGradient(0, 100, 10, 90, 2)
	require.Len(t, lightness, 2)
	assert.Equal(t, HSLToHex(0, 100, 10), lightness[0])
	assert.Equal(t, HSLToHex(0, 100, 90), lightness[1])
	assert.NotEqual(t, "#000000", lightness[0])
	assert.NotEqual(t, "#FFFFFF", lightness[1])
}

func TestOver(t *testing.T) {
	result, err := Over("#FFFFFF", "#000000", 0.1)
	require.NoError(t, err)
	assert.Equal(t, "#1A1A1A", result)

	result, err = Over("#FFFFFF", "#000000", 1)
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", result)

	result, err = Over("#FFFFFF", "#F2F2F7", 0)
	require.NoError(t, err)
	assert.Equal(t, "#F2F2F7", result)

	_, err = Over("white", "#000000", 0.5)
	assert.Error(t, err)
}
