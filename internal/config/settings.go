package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/renato0307/swatch/internal/color"
)

// Defaults applied when settings.json leaves a value out
const (
	DefaultErrorClearDelay = 10
	DefaultRingThickness   = 6
	DefaultTrackLength     = 32
	DefaultWheelSegments   = 72
	DefaultWheelSize       = 32
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "confirm", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// GlobalKeyGroup holds the actions that are active on every screen
const GlobalKeyGroup = "application"

// KeyGroups maps each valid binding name to the screen group it belongs to.
// Bindings in different groups may share keys unless one of them is global.
type KeyGroups map[string]string

// Validate checks for configuration errors in key bindings.
// The groups parameter should come from ui.GetKeyGroups().
func (k KeyBindingsConfig) Validate(groups KeyGroups) error {
	if k == nil {
		return nil
	}

	// Sorted so the reported conflict does not depend on map order
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToActions := make(map[string][]string)

	for _, name := range names {
		group, ok := groups[name]
		if !ok {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			for _, existing := range keyToActions[key] {
				other := groups[existing]
				if other == group || other == GlobalKeyGroup || group == GlobalKeyGroup {
					return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
				}
			}
			keyToActions[key] = append(keyToActions[key], name)
		}
	}

	return nil
}

// Settings represents the structure of ~/.swatch/settings.json
type Settings struct {
	DarkMode        *bool             `json:"dark_mode,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	DefaultColor    string            `json:"default_color,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	RingThickness   *int              `json:"ring_thickness,omitempty"`
	TrackLength     *int              `json:"track_length,omitempty"`
	WheelSegments   *int              `json:"wheel_segments,omitempty"`
	WheelSize       *int              `json:"wheel_size,omitempty"`
}

// Validate checks the values that the picker depends on
func (s *Settings) Validate(keyGroups KeyGroups) error {
	if s.DefaultColor != "" {
		if _, err := color.HexToHSL(s.DefaultColor); err != nil {
			return fmt.Errorf("default_color: %w", err)
		}
	}

	positive := map[string]*int{
		"error_clear_delay": s.ErrorClearDelay,
		"track_length":      s.TrackLength,
		"wheel_segments":    s.WheelSegments,
		"wheel_size":        s.WheelSize,
	}
	for name, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, *v)
		}
	}
	if s.RingThickness != nil && *s.RingThickness < 0 {
		return fmt.Errorf("ring_thickness must not be negative, got %d", *s.RingThickness)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}

	if err := s.Keys.Validate(keyGroups); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// ColorOrDefault returns default_color, or the built-in neutral gray
func (s *Settings) ColorOrDefault() string {
	if s.DefaultColor == "" {
		return color.DefaultColor
	}
	return s.DefaultColor
}

// ErrorClearDelayOrDefault returns error_clear_delay in seconds
func (s *Settings) ErrorClearDelayOrDefault() int {
	return intOrDefault(s.ErrorClearDelay, DefaultErrorClearDelay)
}

// RingThicknessOrDefault returns ring_thickness in picker units
func (s *Settings) RingThicknessOrDefault() int {
	return intOrDefault(s.RingThickness, DefaultRingThickness)
}

// TrackLengthOrDefault returns track_length in picker units
func (s *Settings) TrackLengthOrDefault() int {
	return intOrDefault(s.TrackLength, DefaultTrackLength)
}

// WheelSegmentsOrDefault returns wheel_segments
func (s *Settings) WheelSegmentsOrDefault() int {
	return intOrDefault(s.WheelSegments, DefaultWheelSegments)
}

// WheelSizeOrDefault returns wheel_size in picker units
func (s *Settings) WheelSizeOrDefault() int {
	return intOrDefault(s.WheelSize, DefaultWheelSize)
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// LoadSettings loads settings from $SWATCH_HOME/settings.json (or ~/.swatch/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return loadSettingsFrom(GetSettingsPath())
}

func loadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SWATCH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return saveSettingsTo(GetSettingsPath(), settings)
}

// saveSettingsTo writes a temp file and renames it over path while holding path.lock
func saveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock, err := os.OpenFile(path+".lock", os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer lock.Close()

	if err := lockFile(lock); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(lock)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	return nil
}
