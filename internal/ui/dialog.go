package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Dialog wraps any tea.Model content and adds the application header with a title.
//
//	view := NewPickerView(...)
//	dialog := NewDialog("Primary color", view, devMode)
//	dialog.Update(msg)  // Delegates to the content
//	dialog.View()       // Header + content view
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper that automatically adds headers.
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
// Mouse coordinates are made relative to the content's top-left cell.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		mouse.Y -= d.HeaderHeight()
		msg = mouse
	}
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view.
func (d *Dialog) View() string {
	return d.header() + d.content.View()
}

// HeaderHeight is the number of lines above the content
func (d *Dialog) HeaderHeight() int {
	return strings.Count(d.header(), "\n")
}

// Content returns the wrapped content for type assertion.
//
//	if view, ok := dialog.Content().(*PickerView); ok && view.Completed {
//		result := view.Result()
//	}
func (d *Dialog) Content() tea.Model {
	return d.content
}

func (d *Dialog) header() string {
	return renderDialogHeader(d.devMode, d.title)
}
