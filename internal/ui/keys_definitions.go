package ui

import (
	"sync"

	"github.com/renato0307/swatch/internal/config"
)

// Key groups; keys may repeat across the picker and theme groups
const (
	keyGroupApplication = config.GlobalKeyGroup
	keyGroupPicker      = "picker"
	keyGroupTheme       = "theme"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Group    string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults and help text.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Group: keyGroupApplication, Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Group: keyGroupApplication, Defaults: []string{"?"}, Help: "toggle help"},
	{Name: "quit", Group: keyGroupApplication, Defaults: []string{"q"}, Help: "exit application"},

	// Picker keys
	{Name: "cancel", Group: keyGroupPicker, Defaults: []string{"esc"}, Help: "cancel"},
	{Name: "confirm", Group: keyGroupPicker, Defaults: []string{"enter"}, Help: "select color"},
	{Name: "decrease", Group: keyGroupPicker, Defaults: []string{"left", "h"}, Help: "decrease"},
	{Name: "decrease_more", Group: keyGroupPicker, Defaults: []string{"shift+left", "H"}, Help: "decrease by 10"},
	{Name: "focus_next", Group: keyGroupPicker, Defaults: []string{"tab", "down", "j"}, Help: "next control"},
	{Name: "focus_prev", Group: keyGroupPicker, Defaults: []string{"shift+tab", "up", "k"}, Help: "previous control"},
	{Name: "hex_input", Group: keyGroupPicker, Defaults: []string{"#"}, Help: "type a hex value"},
	{Name: "increase", Group: keyGroupPicker, Defaults: []string{"right", "l"}, Help: "increase"},
	{Name: "increase_more", Group: keyGroupPicker, Defaults: []string{"shift+right", "L"}, Help: "increase by 10"},
	{Name: "preset", Group: keyGroupPicker, Defaults: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}, Help: "pick preset (0=10th)"},

	// Theme screen keys
	{Name: "edit", Group: keyGroupTheme, Defaults: []string{"enter", "e"}, Help: "edit color"},
	{Name: "next_role", Group: keyGroupTheme, Defaults: []string{"down", "j"}, Help: "next color"},
	{Name: "prev_role", Group: keyGroupTheme, Defaults: []string{"up", "k"}, Help: "previous color"},
	{Name: "reset", Group: keyGroupTheme, Defaults: []string{"r"}, Help: "reset colors"},
	{Name: "toggle_dark", Group: keyGroupTheme, Defaults: []string{"d"}, Help: "toggle dark mode"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	keyGroups     config.KeyGroups
	keyGroupsOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetKeyGroups maps every valid key binding name to its group.
// The result is cached after the first call.
func GetKeyGroups() config.KeyGroups {
	keyGroupsOnce.Do(func() {
		keyGroups = make(config.KeyGroups, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyGroups[def.Name] = def.Group
		}
	})
	return keyGroups
}
