package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swatch/internal/config"
	"github.com/renato0307/swatch/internal/logging"
	"github.com/renato0307/swatch/internal/picker"
	"github.com/renato0307/swatch/internal/ui"
)

// PickCmd opens a standalone picker and prints the confirmed color
type PickCmd struct {
	Blend       string `help:"Interpolation used for slider gradients" enum:"hsl,rgb" default:"hsl"`
	Dev         bool   `help:"Enable development mode (shows version info in dialogs)"`
	Grid        bool   `help:"Use the preset grid instead of the wheel"`
	Initial     string `help:"Color to start from (defaults to default_color from settings)" placeholder:"HEX"`
	SaveDefault bool   `help:"Store the picked color as default_color in settings.json"`
	Title       string `help:"Title shown above the picker" default:"Pick a color"`
}

// Run executes the pick command
func (p *PickCmd) Run(cli *CLI) error {
	initial := p.Initial
	if initial == "" {
		initial = cli.Container.DefaultColor
	}

	var picked string
	ctrl := picker.NewController(cli.Container.Geometry.Layout())
	if err := ctrl.Open(initial, func(hex string) { picked = hex }); err != nil {
		return fmt.Errorf("invalid initial color: %w", err)
	}

	model := ui.NewPickModel(ctrl, p.Title, cli.Container.Geometry, ui.NewKeyMap(cli.settings.Keys), p.Dev, p.Grid, p.Blend)

	// The picker draws on stderr so stdout carries only the result
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	if _, err := program.Run(); err != nil {
		logging.Logger.Error("Picker program error", "error", err)
		return fmt.Errorf("error running picker: %w", err)
	}

	if result := model.Result(); result.Cancelled || picked == "" {
		logging.Logger.Info("Pick cancelled", "picker_id", ctrl.ID())
		return ErrCancelled
	}

	logging.Logger.Info("Color picked", "picker_id", ctrl.ID(), "hex", picked)
	fmt.Println(picked)

	if p.SaveDefault {
		cli.settings.DefaultColor = picked
		if err := config.SaveSettings(cli.settings); err != nil {
			return fmt.Errorf("failed to save default color: %w", err)
		}
		logging.Logger.Info("Default color saved", "hex", picked)
	}
	return nil
}
