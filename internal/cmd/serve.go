package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swatch/internal/config"
	"github.com/renato0307/swatch/internal/logging"
	"github.com/renato0307/swatch/internal/server"
	"github.com/renato0307/swatch/internal/ui"
)

// ServeCmd serves the theme TUI to SSH clients
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file clients must be listed in" default:"~/.ssh/authorized_keys"`
	Blend          string `help:"Interpolation used for slider gradients" enum:"hsl,rgb" default:"hsl"`
	Grid           bool   `help:"Edit colors with the preset grid instead of the wheel"`
	Host           string `help:"Address to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	errorClearDelay := time.Duration(cli.settings.ErrorClearDelayOrDefault()) * time.Second

	newModel := func() tea.Model {
		return ui.NewModel(
			cli.Container.NewThemeService(),
			cli.Container.Geometry,
			errorClearDelay,
			false,
			s.Grid,
			s.Blend,
			cli.settings.Keys,
		)
	}

	srv, err := server.NewServer(s.Host, s.Port, config.GetHostKeyPath(), config.ExpandPath(s.AuthorizedKeys), newModel)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving swatch on %s (ctrl+c to stop)\n", srv.Address())
	logging.Logger.Info("Serving over SSH", "address", srv.Address(), "authorized_keys", s.AuthorizedKeys)
	return srv.Start(ctx)
}
