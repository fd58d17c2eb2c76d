package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swatch/internal/picker"
)

// PickModel runs a single picker full screen and quits when it ends
type PickModel struct {
	dialog *Dialog
}

// NewPickModel wraps an opened controller in a titled dialog
func NewPickModel(ctrl *picker.Controller, title string, geom PickerGeometry, keys KeyMap, devMode, grid bool, blend string) *PickModel {
	var content tea.Model
	if grid {
		content = NewGridView(ctrl, keys)
	} else {
		content = NewPickerView(ctrl, geom, keys, blend)
	}
	return &PickModel{dialog: NewDialog(title, content, devMode)}
}

func (m *PickModel) Init() tea.Cmd {
	return m.dialog.Init()
}

func (m *PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)

	if _, done := pickerOutcome(m.dialog.Content()); done {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *PickModel) View() string {
	if _, done := pickerOutcome(m.dialog.Content()); done {
		return ""
	}
	return m.dialog.View()
}

// Result returns how the picker ended; Cancelled is also set when the program quit early
func (m *PickModel) Result() PickerResult {
	result, done := pickerOutcome(m.dialog.Content())
	if !done {
		return PickerResult{Cancelled: true}
	}
	return result
}
