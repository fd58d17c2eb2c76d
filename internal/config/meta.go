package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"confirm": "enter",
			"help":    []string{"h", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "dark_mode"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			case "ring_thickness":
				return DefaultRingThickness
			case "track_length":
				return DefaultTrackLength
			case "wheel_segments":
				return DefaultWheelSegments
			case "wheel_size":
				return DefaultWheelSize
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "default_color":
			return "#8E8E93"
		default:
			return "example"
		}
	}

	return nil
}
