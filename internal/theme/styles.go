package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Dialog styles
var (
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDialogBorder).
			Padding(0, 1)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)
)

// Picker styles
var (
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorFocus).
				Bold(true)

	HexStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	ThumbStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Theme list styles
var (
	RowSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	LockedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// SwatchStyle paints a cell with the given #RRGGBB background
func SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}

// CellStyle paints a cell's upper half with top and its lower half with bottom
// when rendering "▀"
func CellStyle(top, bottom string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(top)).
		Background(lipgloss.Color(bottom))
}

// ContrastText picks black or white text for a background color
func ContrastText(lightness float64) Color {
	if lightness > 60 {
		return "#000000"
	}
	return "#FFFFFF"
}
