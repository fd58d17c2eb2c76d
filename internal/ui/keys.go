package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/swatch/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Picker      PickerKeys
	Theme       ThemeKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
// Pass nil for keysConfig to use default bindings
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Picker:      newPickerKeys(defaults, keysConfig),
		Theme:       newThemeKeys(defaults, keysConfig),
	}
}

// pickerHelp adapts the picker bindings to help.KeyMap
type pickerHelp struct {
	app    ApplicationKeys
	picker PickerKeys
}

func (h pickerHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		h.picker.Confirm,
		h.picker.Cancel,
		h.picker.FocusNext,
		h.picker.Decrease,
		h.picker.Increase,
		h.picker.HexInput,
		h.app.Help,
	}
}

func (h pickerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.picker.Confirm, h.picker.Cancel, h.picker.HexInput, h.picker.Preset},
		{h.picker.FocusNext, h.picker.FocusPrev},
		{h.picker.Decrease, h.picker.Increase, h.picker.DecreaseMore, h.picker.IncreaseMore},
		{h.app.Help, h.app.ForceQuit},
	}
}

// themeHelp adapts the theme screen bindings to help.KeyMap
type themeHelp struct {
	app   ApplicationKeys
	theme ThemeKeys
}

func (h themeHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		h.theme.Edit,
		h.theme.ToggleDark,
		h.theme.Reset,
		h.app.Help,
		h.app.Quit,
	}
}

func (h themeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.theme.PrevRole, h.theme.NextRole, h.theme.Edit},
		{h.theme.ToggleDark, h.theme.Reset},
		{h.app.Help, h.app.Quit, h.app.ForceQuit},
	}
}
