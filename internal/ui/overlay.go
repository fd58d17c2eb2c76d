package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/swatch/internal/theme"
)

// overlayOrigin is the top-left cell where compositeOverlay places an overlay
func overlayOrigin(overlay string, width, height int) (x, y int) {
	overlayWidth, overlayHeight := lipgloss.Size(overlay)

	x = (width - overlayWidth) / 2
	y = (height - overlayHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// compositeOverlay renders an overlay centered on top of a dimmed background.
// The background content is visible but dimmed, with the overlay rendered on top.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	// Use actual background height, but ensure minimum of terminal height
	actualHeight := len(bgLines)
	if height > actualHeight {
		actualHeight = height
	}
	for len(bgLines) < actualHeight {
		bgLines = append(bgLines, "")
	}

	// Dim each background line and pad to full width
	for i := range bgLines {
		dimmedLine := theme.DimmedStyle.Render(stripAnsi(bgLines[i]))
		if visibleWidth := lipgloss.Width(dimmedLine); visibleWidth < width {
			dimmedLine += strings.Repeat(" ", width-visibleWidth)
		}
		bgLines[i] = dimmedLine
	}

	startX, startY := overlayOrigin(overlay, width, height)

	result := make([]string, len(bgLines))
	for y := range bgLines {
		idx := y - startY
		if idx < 0 || idx >= len(overlayLines) {
			result[y] = bgLines[y]
			continue
		}

		overlayLine := overlayLines[idx]
		rightPadWidth := width - startX - lipgloss.Width(overlayLine)
		if rightPadWidth < 0 {
			rightPadWidth = 0
		}
		result[y] = strings.Repeat(" ", startX) + overlayLine + strings.Repeat(" ", rightPadWidth)
	}

	return strings.Join(result, "\n")
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// End of escape sequence at 'm' (SGR) or other terminator
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
