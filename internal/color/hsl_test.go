package color

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestHSLToHex_Primaries(t *testing.T) {
	tests := []struct {
		name     string
		h, s, l  float64
		expected string
	}{
		{"red", 0, 100, 50, "#FF0000"},
		{"green", 120, 100, 50, "#00FF00"},
		{"blue", 240, 100, 50, "#0000FF"},
		{"yellow", 60, 100, 50, "#FFFF00"},
		{"cyan", 180, 100, 50, "#00FFFF"},
		{"magenta", 300, 100, 50, "#FF00FF"},
		{"white", 0, 0, 100, "#FFFFFF"},
		{"black", 0, 0, 0, "#000000"},
		{"orange", 30, 100, 50, "#FF8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HSLToHex(tt.h, tt.s, tt.l))
		})
	}
}

func TestHSLToHex_OutOfRangeInputs(t *testing.T) {
	tests := []struct {
		name     string
		h, s, l  float64
		expected string
	}{
		{"hue 360 wraps to red", 360, 100, 50, "#FF0000"},
		{"hue 720 wraps to red", 720, 100, 50, "#FF0000"},
		{"negative hue wraps", -240, 100, 50, "#00FF00"},
		{"saturation above 100 clamps", 0, 250, 50, "#FF0000"},
		{"negative lightness clamps to black", 0, 100, -5, "#000000"},
		{"lightness above 100 clamps to white", 0, 100, 130, "#FFFFFF"},
		{"NaN hue treated as 0", math.NaN(), 100, 50, "#FF0000"},
		{"NaN saturation treated as 0", 0, math.NaN(), 50, "#808080"},
		{"infinite hue treated as 0", math.Inf(1), 100, 50, "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HSLToHex(tt.h, tt.s, tt.l)
			assert.Equal(t, tt.expected, result)
			assert.Regexp(t, hexPattern, result)
		})
	}
}

func TestHSLToHex_AlwaysWellFormed(t *testing.T) {
	for h := 0.0; h < 360; h += 7.5 {
		for s := 0.0; s <= 100; s += 12.5 {
			for l := 0.0; l <= 100; l += 12.5 {
				result := HSLToHex(h, s, l)
				require.Regexp(t, hexPattern, result, "h=%v s=%v l=%v", h, s, l)
			}
		}
	}
}

func TestHSLToHex_ZeroSaturationIsGray(t *testing.T) {
	for h := 0.0; h < 360; h += 15 {
		result := HSLToHex(h, 0, 50)
		r, g, b := channels(t, result)
		assert.Equal(t, r, g, "hue %v", h)
		assert.Equal(t, g, b, "hue %v", h)
	}
}

func TestHexToHSL_KnownColors(t *testing.T) {
	result, err := HexToHSL("#007AFF")
	require.NoError(t, err)
	assert.InDelta(t, 211.29, result.H, 0.01)
	assert.InDelta(t, 100, result.S, 1e-9)
	assert.InDelta(t, 50, result.L, 1e-9)

	result, err = HexToHSL("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 0, S: 100, L: 50}, result)

	result, err = HexToHSL("#FF00FF")
	require.NoError(t, err)
	assert.InDelta(t, 300, result.H, 1e-9)
}

func TestHexToHSL_Achromatic(t *testing.T) {
	tests := []struct {
		hex string
		l   float64
	}{
		{"#000000", 0},
		{"#FFFFFF", 100},
		{"#808080", 50.196},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			result, err := HexToHSL(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, 0.0, result.H)
			assert.Equal(t, 0.0, result.S)
			assert.InDelta(t, tt.l, result.L, 0.001)
			assert.False(t, math.IsNaN(result.H))
		})
	}
}

func TestHexToHSL_DefaultColorIsNearlyNeutral(t *testing.T) {
	result, err := HexToHSL(DefaultColor)
	require.NoError(t, err)
	assert.Less(t, result.S, 5.0)
	assert.Equal(t, DefaultColor, result.Hex())
}

func TestHexToHSL_ComponentsStayInRange(t *testing.T) {
	// #FFD60A computes a saturation a hair above 100 before clamping
	result, err := HexToHSL("#FFD60A")
	require.NoError(t, err)
	assert.LessOrEqual(t, result.S, 100.0)
	assert.GreaterOrEqual(t, result.H, 0.0)
	assert.Less(t, result.H, 360.0)
}

func TestHexToHSL_InvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing hash", "007AFF"},
		{"short form", "#FFF"},
		{"too long", "#007AFF00"},
		{"non-hex digits", "#00ZZFF"},
		{"sign inside", "#+7AFFF"},
		{"named color", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HexToHSL(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidColorFormat)
		})
	}
}

func TestRoundTrip_PresetsAreExact(t *testing.T) {
	require.Len(t, Presets, 15)
	for _, preset := range Presets {
		t.Run(preset, func(t *testing.T) {
			hsl, err := HexToHSL(preset)
			require.NoError(t, err)
			assert.Equal(t, preset, hsl.Hex())
		})
	}
}

func TestRoundTrip_RandomWithinOneUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		hex := fmt.Sprintf("#%06X", rng.Intn(1<<24))
		hsl, err := HexToHSL(hex)
		require.NoError(t, err)

		r1, g1, b1 := channels(t, hex)
		r2, g2, b2 := channels(t, hsl.Hex())
		assert.LessOrEqual(t, absDiff(r1, r2), 1, hex)
		assert.LessOrEqual(t, absDiff(g1, g2), 1, hex)
		assert.LessOrEqual(t, absDiff(b1, b2), 1, hex)
	}
}

func TestParseHex_Canonicalizes(t *testing.T) {
	result, err := ParseHex("#00c7be")
	require.NoError(t, err)
	assert.Equal(t, "#00C7BE", result)

	_, err = ParseHex("#00c7b")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestWrapHue(t *testing.T) {
	assert.Equal(t, 0.0, WrapHue(360))
	assert.Equal(t, 90.0, WrapHue(450))
	assert.Equal(t, 270.0, WrapHue(-90))
	assert.Equal(t, 0.0, WrapHue(-1e-20))
}

func TestHSLString(t *testing.T) {
	assert.Equal(t, "hsl(211, 100%, 50%)", HSL{H: 211.29, S: 100, L: 50}.String())
	assert.Equal(t, "hsl(0, 0%, 50%)", HSL{H: 359.8, S: 0, L: 50}.String())
}

func TestPresetIndex(t *testing.T) {
	assert.Equal(t, 0, PresetIndex("#007aff"))
	assert.Equal(t, 14, PresetIndex("#FFD60A"))
	assert.Equal(t, -1, PresetIndex("#123456"))
	assert.Equal(t, -1, PresetIndex("nope"))
}

func channels(t *testing.T, hex string) (int, int, int) {
	t.Helper()
	require.Regexp(t, hexPattern, hex)
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	require.NoError(t, err)
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
