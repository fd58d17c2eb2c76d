package color

// Presets are the swatches offered by the grid picker and the preset row of the wheel picker
var Presets = []string{
	"#007AFF", "#5856D6", "#AF52DE", "#FF2D55", "#FF3B30",
	"#FF9500", "#FFCC00", "#34C759", "#00C7BE", "#30B0C7",
	"#32ADE6", "#64D2FF", "#BF5AF2", "#FF6482", "#FFD60A",
}

// PresetIndex returns the position of hex in Presets, or -1
func PresetIndex(hex string) int {
	canonical, err := ParseHex(hex)
	if err != nil {
		return -1
	}
	for i, p := range Presets {
		if p == canonical {
			return i
		}
	}
	return -1
}
