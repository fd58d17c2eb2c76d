package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/swatch/internal/config"
)

// PickerKeys defines key bindings inside the color picker
type PickerKeys struct {
	Cancel       key.Binding
	Confirm      key.Binding
	Decrease     key.Binding
	DecreaseMore key.Binding
	FocusNext    key.Binding
	FocusPrev    key.Binding
	HexInput     key.Binding
	Increase     key.Binding
	IncreaseMore key.Binding
	Preset       key.Binding
}

// newPickerKeys creates picker key bindings
func newPickerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) PickerKeys {
	return PickerKeys{
		Cancel:       buildBinding("cancel", defaults, customKeys),
		Confirm:      buildBinding("confirm", defaults, customKeys),
		Decrease:     buildBinding("decrease", defaults, customKeys),
		DecreaseMore: buildBinding("decrease_more", defaults, customKeys),
		FocusNext:    buildBinding("focus_next", defaults, customKeys),
		FocusPrev:    buildBinding("focus_prev", defaults, customKeys),
		HexInput:     buildBinding("hex_input", defaults, customKeys),
		Increase:     buildBinding("increase", defaults, customKeys),
		IncreaseMore: buildBinding("increase_more", defaults, customKeys),
		Preset:       buildBinding("preset", defaults, customKeys),
	}
}

// ThemeKeys defines key bindings on the theme screen
type ThemeKeys struct {
	Edit       key.Binding
	NextRole   key.Binding
	PrevRole   key.Binding
	Reset      key.Binding
	ToggleDark key.Binding
}

// newThemeKeys creates theme screen key bindings
func newThemeKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ThemeKeys {
	return ThemeKeys{
		Edit:       buildBinding("edit", defaults, customKeys),
		NextRole:   buildBinding("next_role", defaults, customKeys),
		PrevRole:   buildBinding("prev_role", defaults, customKeys),
		Reset:      buildBinding("reset", defaults, customKeys),
		ToggleDark: buildBinding("toggle_dark", defaults, customKeys),
	}
}
