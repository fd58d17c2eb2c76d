package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/swatch/internal/color"
	"github.com/renato0307/swatch/internal/picker"
	"github.com/renato0307/swatch/internal/theme"
)

const (
	gridColumns    = 5
	gridCellWidth  = 6
	gridCellHeight = 2
	gridGapX       = 1
	gridGapY       = 1

	cancelButton = "[ Cancel ]"
	selectButton = "[ Select ]"
	buttonGap    = 2
)

// GridView is the preset-grid presentation of a picker controller.
// Choosing a swatch replaces the controller's color; Select confirms it.
type GridView struct {
	Completed bool
	cursor    int
	ctrl      *picker.Controller
	help      help.Model
	keys      KeyMap
	result    PickerResult
}

// NewGridView creates a grid over an opened controller
func NewGridView(ctrl *picker.Controller, keys KeyMap) *GridView {
	cursor := color.PresetIndex(ctrl.Hex())
	if cursor < 0 {
		cursor = 0
	}
	return &GridView{
		cursor: cursor,
		ctrl:   ctrl,
		help:   help.New(),
		keys:   keys,
	}
}

func (g *GridView) Init() tea.Cmd {
	return nil
}

func (g *GridView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if g.Completed || !g.ctrl.Active() {
		return g, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			g.handleClick(msg.X, msg.Y)
		}

	case tea.KeyMsg:
		pk := g.keys.Picker
		switch {
		case key.Matches(msg, pk.Confirm):
			g.confirm()
		case key.Matches(msg, pk.Cancel), key.Matches(msg, g.keys.Application.ForceQuit):
			g.cancel()
		case key.Matches(msg, pk.Decrease):
			g.moveCursor(-1)
		case key.Matches(msg, pk.Increase):
			g.moveCursor(1)
		case key.Matches(msg, pk.FocusNext):
			g.moveCursor(gridColumns)
		case key.Matches(msg, pk.FocusPrev):
			g.moveCursor(-gridColumns)
		case key.Matches(msg, pk.Preset):
			for i, k := range pk.Preset.Keys() {
				if k == msg.String() && i < len(color.Presets) {
					g.choose(i)
					break
				}
			}
		}
	}

	return g, nil
}

func (g *GridView) handleClick(col, row int) {
	if idx := g.cellAt(col, row); idx >= 0 {
		g.choose(idx)
		return
	}
	if row != g.buttonRow() {
		return
	}
	cancelEnd := lipgloss.Width(cancelButton)
	selectStart := cancelEnd + buttonGap
	switch {
	case col >= 0 && col < cancelEnd:
		g.cancel()
	case col >= selectStart && col < selectStart+lipgloss.Width(selectButton):
		g.confirm()
	}
}

// cellAt maps a cell to a preset index, or -1 for gaps and empty space
func (g *GridView) cellAt(col, row int) int {
	if col < 0 || row < 0 {
		return -1
	}
	strideX, strideY := gridCellWidth+gridGapX, gridCellHeight+gridGapY
	if col%strideX >= gridCellWidth || row%strideY >= gridCellHeight {
		return -1
	}
	c, r := col/strideX, row/strideY
	if c >= gridColumns {
		return -1
	}
	idx := r*gridColumns + c
	if idx >= len(color.Presets) {
		return -1
	}
	return idx
}

func (g *GridView) gridRows() int {
	return (len(color.Presets) + gridColumns - 1) / gridColumns
}

// buttonRow is below the grid, the preview line and a spacer
func (g *GridView) buttonRow() int {
	return g.gridRows()*(gridCellHeight+gridGapY) + 2
}

func (g *GridView) moveCursor(delta int) {
	next := g.cursor + delta
	if next < 0 || next >= len(color.Presets) {
		return
	}
	g.cursor = next
	g.choose(next)
}

func (g *GridView) choose(idx int) {
	g.cursor = idx
	// Presets are valid by construction
	_ = g.ctrl.SelectHex(color.Presets[idx])
}

func (g *GridView) confirm() {
	g.result = PickerResult{Hex: g.ctrl.Confirm()}
	g.Completed = true
}

func (g *GridView) cancel() {
	g.ctrl.Cancel()
	g.result = PickerResult{Cancelled: true}
	g.Completed = true
}

// Result returns the picker outcome once Completed is set
func (g *GridView) Result() PickerResult {
	return g.result
}

// Cursor returns the highlighted preset index
func (g *GridView) Cursor() int {
	return g.cursor
}

func (g *GridView) View() string {
	current := g.ctrl.Hex()
	var b strings.Builder

	for r := 0; r < g.gridRows(); r++ {
		for line := 0; line < gridCellHeight; line++ {
			for c := 0; c < gridColumns; c++ {
				idx := r*gridColumns + c
				if idx >= len(color.Presets) {
					break
				}
				fill := strings.Repeat(" ", gridCellWidth)
				if idx == g.cursor && line == 0 {
					fill = "  ▶▶  "
				}
				if color.Presets[idx] == current && line == gridCellHeight-1 {
					fill = "  ••  "
				}
				b.WriteString(theme.ThumbStyle.Background(lipgloss.Color(color.Presets[idx])).Render(fill))
				b.WriteString(strings.Repeat(" ", gridGapX))
			}
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("\n", gridGapY))
	}

	b.WriteString(theme.LabelStyle.Render("Selected ") +
		theme.SwatchStyle(current).Render("    ") + " " +
		theme.HexStyle.Render(current))
	b.WriteString("\n\n")
	b.WriteString(theme.NormalStyle.Render(cancelButton) + strings.Repeat(" ", buttonGap) + theme.HexStyle.Render(selectButton))
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(g.help.View(pickerHelp{app: g.keys.Application, picker: g.keys.Picker})))
	return b.String()
}
