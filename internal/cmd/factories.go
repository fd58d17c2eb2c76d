package cmd

import (
	adapterstorage "github.com/renato0307/swatch/internal/adapters/storage"
	"github.com/renato0307/swatch/internal/config"
	"github.com/renato0307/swatch/internal/ports"
	"github.com/renato0307/swatch/internal/services"
	"github.com/renato0307/swatch/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	DarkMode     bool
	DefaultColor string
	Geometry     ui.PickerGeometry
	ThemeService *services.ThemeService

	// Internal - for cleanup only
	prefsRepo ports.PreferenceRepository
}

// NewContainer opens the preference store and derives the picker layout from settings
func NewContainer(settings *config.Settings) (*Container, error) {
	prefsRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}
	return newContainer(settings, prefsRepo), nil
}

func newContainer(settings *config.Settings, prefsRepo ports.PreferenceRepository) *Container {
	darkMode := true
	if settings.DarkMode != nil {
		darkMode = *settings.DarkMode
	}

	c := &Container{
		DarkMode:     darkMode,
		DefaultColor: settings.ColorOrDefault(),
		Geometry:     pickerGeometry(settings),
		prefsRepo:    prefsRepo,
	}
	c.ThemeService = c.NewThemeService()
	return c
}

// NewThemeService creates a theme service over the shared preference store.
// Each SSH session gets its own so sessions do not see each other's unsaved state.
func (c *Container) NewThemeService() *services.ThemeService {
	return services.NewThemeService(c.prefsRepo).WithDefaultDarkMode(c.DarkMode)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.prefsRepo != nil {
		return c.prefsRepo.Close()
	}
	return nil
}

func pickerGeometry(settings *config.Settings) ui.PickerGeometry {
	return ui.NewPickerGeometry(
		settings.WheelSizeOrDefault(),
		settings.RingThicknessOrDefault(),
		settings.TrackLengthOrDefault(),
		settings.WheelSegmentsOrDefault(),
	)
}
