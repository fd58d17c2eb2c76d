package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swatch/internal/config"
	"github.com/renato0307/swatch/internal/logging"
	"github.com/renato0307/swatch/internal/ui"
)

// ErrCancelled is returned when the user closes a picker without choosing
var ErrCancelled = errors.New("cancelled")

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the swatch theme TUI (default)" default:"1"`
	Pick     PickCmd     `cmd:"pick" help:"Pick a single color and print it"`
	Convert  ConvertCmd  `cmd:"convert" help:"Convert between hex and HSL"`
	Theme    ThemeCmd    `cmd:"theme" help:"Show and change the stored theme"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the theme TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("SWATCH_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("SWATCH_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Exported after initialization so every SSH session logs to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SWATCH_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SWATCH_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("SWATCH_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	if err := c.settings.Validate(ui.GetKeyGroups()); err != nil {
		return fmt.Errorf("invalid settings.json: %w", err)
	}

	// Created after logging so GORM's logger has somewhere to write
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the theme TUI
type RunCmd struct {
	Blend           string `help:"Interpolation used for slider gradients" enum:"hsl,rgb" default:"hsl"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Grid            bool   `help:"Edit colors with the preset grid instead of the wheel"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if r.ErrorClearDelay == config.DefaultErrorClearDelay {
		r.ErrorClearDelay = cli.settings.ErrorClearDelayOrDefault()
	}

	logging.Logger.Info("Starting swatch TUI", "grid", r.Grid, "blend", r.Blend)

	p := tea.NewProgram(
		ui.NewModel(
			cli.Container.ThemeService,
			cli.Container.Geometry,
			time.Duration(r.ErrorClearDelay)*time.Second,
			r.Dev,
			r.Grid,
			r.Blend,
			cli.settings.Keys,
		),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
