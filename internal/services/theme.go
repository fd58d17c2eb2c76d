package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/swatch/internal/color"
	"github.com/renato0307/swatch/internal/domain"
	"github.com/renato0307/swatch/internal/logging"
	"github.com/renato0307/swatch/internal/picker"
	"github.com/renato0307/swatch/internal/ports"
)

// Preference keys
const (
	PrefDarkMode   = "isDarkMode"
	PrefUserColors = "userColors"
)

// SavedFunc is called after a picked color has been persisted, or failed to
type SavedFunc func(hex string, err error)

// ThemeService owns the dark-mode flag and the user's color overrides
type ThemeService struct {
	mu          sync.RWMutex
	saveMu      sync.Mutex // Held across each save; state changes only once the store accepts it
	custom      map[domain.ColorRole]string
	darkMode    bool
	defaultDark bool // Used when no dark-mode flag is stored
	prefs       ports.PreferenceRepository
}

// NewThemeService creates a ThemeService with the built-in dark theme.
// Call Load to apply persisted preferences.
func NewThemeService(prefs ports.PreferenceRepository) *ThemeService {
	return &ThemeService{
		custom:      map[domain.ColorRole]string{},
		darkMode:    true,
		defaultDark: true,
		prefs:       prefs,
	}
}

// WithDefaultDarkMode sets the mode used until a preference has been stored
func (s *ThemeService) WithDefaultDarkMode(darkMode bool) *ThemeService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = darkMode
	s.defaultDark = darkMode
	return s
}

// Load reads the stored overrides and the dark-mode flag concurrently.
// Missing keys keep the defaults; unreadable values are logged and ignored.
func (s *ThemeService) Load(ctx context.Context) error {
	var rawColors, rawDarkMode string
	var hasColors, hasDarkMode bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawColors, hasColors, err = s.lookup(gctx, PrefUserColors)
		return err
	})
	g.Go(func() error {
		var err error
		rawDarkMode, hasDarkMode, err = s.lookup(gctx, PrefDarkMode)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load theme preferences: %w", err)
	}

	custom := map[domain.ColorRole]string{}
	if hasColors {
		if err := json.Unmarshal([]byte(rawColors), &custom); err != nil {
			logging.Logger.Warn("Ignoring unreadable stored colors", "value", rawColors, "error", err)
			custom = map[domain.ColorRole]string{}
		}
		for role, hex := range custom {
			if _, err := color.HexToHSL(hex); err != nil {
				// Kept as stored; the picker falls back when opened on it
				logging.Logger.Warn("Stored color is not a valid hex", "role", role, "value", hex)
			}
		}
	}

	s.mu.RLock()
	darkMode := s.defaultDark
	s.mu.RUnlock()
	if hasDarkMode {
		parsed, err := strconv.ParseBool(rawDarkMode)
		if err != nil {
			logging.Logger.Warn("Ignoring unreadable dark mode flag", "value", rawDarkMode, "error", err)
		} else {
			darkMode = parsed
		}
	}

	s.mu.Lock()
	s.custom = custom
	s.darkMode = darkMode
	s.mu.Unlock()

	logging.Logger.Info("Theme loaded", "dark_mode", darkMode, "custom_roles", len(custom))
	return nil
}

// Colors returns the active palette: the base for the current mode merged with the overrides
func (s *ThemeService) Colors() domain.Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.BasePalette(s.darkMode).Merge(s.custom)
}

// Color returns the active color of one role
func (s *ThemeService) Color(role domain.ColorRole) (string, error) {
	return s.Colors().Get(role)
}

// IsDarkMode reports the current mode
func (s *ThemeService) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// Overrides returns a copy of the user's overrides
func (s *ThemeService) Overrides() map[domain.ColorRole]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.ColorRole]string, len(s.custom))
	for role, hex := range s.custom {
		out[role] = hex
	}
	return out
}

// UpdateColors merges overrides into the current ones and persists the customizable roles.
// Every role must be known and every value a valid hex color.
func (s *ThemeService) UpdateColors(ctx context.Context, overrides map[domain.ColorRole]string) error {
	validated := make(map[domain.ColorRole]string, len(overrides))
	for role, hex := range overrides {
		if _, err := domain.ParseColorRole(string(role)); err != nil {
			return err
		}
		canonical, err := color.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("invalid color for %s: %w", role, err)
		}
		validated[role] = canonical
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	merged := s.Overrides()
	for role, hex := range validated {
		merged[role] = hex
	}
	persisted := map[domain.ColorRole]string{}
	for _, role := range domain.CustomizableRoles {
		if hex, ok := merged[role]; ok {
			persisted[role] = hex
		}
	}

	data, err := json.Marshal(persisted)
	if err != nil {
		return fmt.Errorf("failed to encode colors: %w", err)
	}
	if err := s.prefs.Set(ctx, PrefUserColors, string(data)); err != nil {
		logging.Logger.Error("Failed to save colors", "error", err)
		return fmt.Errorf("failed to save colors: %w", err)
	}

	s.mu.Lock()
	s.custom = merged
	s.mu.Unlock()

	logging.Logger.Info("Colors updated", "roles", len(validated))
	return nil
}

// SetDarkMode sets and persists the mode
func (s *ThemeService) SetDarkMode(ctx context.Context, darkMode bool) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.prefs.Set(ctx, PrefDarkMode, strconv.FormatBool(darkMode)); err != nil {
		logging.Logger.Error("Failed to save dark mode", "error", err)
		return fmt.Errorf("failed to save dark mode: %w", err)
	}

	s.mu.Lock()
	s.darkMode = darkMode
	s.mu.Unlock()
	logging.Logger.Info("Dark mode changed", "dark_mode", darkMode)
	return nil
}

// ToggleDarkMode flips the mode and returns the new value
func (s *ThemeService) ToggleDarkMode(ctx context.Context) (bool, error) {
	darkMode := !s.IsDarkMode()
	return darkMode, s.SetDarkMode(ctx, darkMode)
}

// ResetColors drops every override
func (s *ThemeService) ResetColors(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.prefs.Delete(ctx, PrefUserColors); err != nil {
		logging.Logger.Error("Failed to reset colors", "error", err)
		return fmt.Errorf("failed to reset colors: %w", err)
	}

	s.mu.Lock()
	s.custom = map[domain.ColorRole]string{}
	s.mu.Unlock()
	logging.Logger.Info("Colors reset")
	return nil
}

// OpenPicker opens a fresh picker on the current color of role.
// When that color is not a valid hex the picker starts from DefaultColor and
// the returned error wraps ErrInvalidColorFormat; the controller is usable either way.
// Confirming persists the role before onSaved runs.
func (s *ThemeService) OpenPicker(
	ctx context.Context,
	role domain.ColorRole,
	layout picker.Layout,
	onSaved SavedFunc,
) (*picker.Controller, error) {
	current, err := s.Color(role)
	if err != nil {
		return nil, err
	}

	onSelect := func(hex string) {
		err := s.UpdateColors(ctx, map[domain.ColorRole]string{role: hex})
		if onSaved != nil {
			onSaved(hex, err)
		}
	}

	ctrl := picker.NewController(layout)
	openErr := ctrl.Open(current, onSelect)
	if openErr == nil {
		return ctrl, nil
	}
	if !errors.Is(openErr, color.ErrInvalidColorFormat) {
		return nil, openErr
	}

	logging.Logger.Warn("Falling back to default color", "role", role, "value", current)
	if err := ctrl.Open(color.DefaultColor, onSelect); err != nil {
		return nil, err
	}
	return ctrl, fmt.Errorf("color of %s: %w", role, openErr)
}

func (s *ThemeService) lookup(ctx context.Context, key string) (string, bool, error) {
	value, err := s.prefs.Get(ctx, key)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
