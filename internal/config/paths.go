package config

import (
	"os"
	"path/filepath"
)

// GetSwatchHome returns SWATCH_HOME or ~/.swatch default
func GetSwatchHome() string {
	swatchHome := os.Getenv("SWATCH_HOME")
	if swatchHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".swatch"
		}
		return filepath.Join(homeDir, ".swatch")
	}
	return ExpandPath(swatchHome)
}

// GetDBPath returns $SWATCH_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetSwatchHome(), "state.db")
}

// GetSettingsPath returns $SWATCH_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetSwatchHome(), "settings.json")
}

// GetHostKeyPath returns $SWATCH_HOME/ssh/id_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetSwatchHome(), "ssh", "id_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
