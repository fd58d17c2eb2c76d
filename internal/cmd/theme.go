package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/swatch/internal/domain"
	"github.com/renato0307/swatch/internal/services"
)

// ThemeCmd manages the stored theme
type ThemeCmd struct {
	Show     ThemeShowCmd     `cmd:"show" help:"Show the palette colors" default:"1"`
	Set      ThemeSetCmd      `cmd:"set" help:"Set the color of a role"`
	Reset    ThemeResetCmd    `cmd:"reset" help:"Remove all custom colors"`
	DarkMode ThemeDarkModeCmd `cmd:"dark-mode" help:"Switch between dark and light mode"`
}

// ThemeShowCmd prints every role with its color
type ThemeShowCmd struct{}

// Run executes the show command
func (t *ThemeShowCmd) Run(cli *CLI) error {
	svc := cli.Container.ThemeService
	if err := svc.Load(context.Background()); err != nil {
		return err
	}
	return printTheme(os.Stdout, svc)
}

func printTheme(out io.Writer, svc *services.ThemeService) error {
	mode := "light"
	if svc.IsDarkMode() {
		mode = "dark"
	}
	fmt.Fprintf(out, "Mode: %s\n\n", mode)

	overrides := svc.Overrides()
	colors := svc.Colors()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tCOLOR\tSOURCE")
	for _, role := range colors.SortedRoles() {
		source := "default"
		if !role.IsCustomizable() {
			source = "locked"
		} else if _, ok := overrides[role]; ok {
			source = "custom"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", role, colors[role], source)
	}
	return w.Flush()
}

// ThemeSetCmd stores a custom color
type ThemeSetCmd struct {
	Role string `arg:"" help:"Role to change (see 'swatch theme show')"`
	Hex  string `arg:"" help:"New color as #RRGGBB"`
}

// Run executes the set command
func (t *ThemeSetCmd) Run(cli *CLI) error {
	return setColor(context.Background(), cli.Container.ThemeService, t.Role, t.Hex)
}

func setColor(ctx context.Context, svc *services.ThemeService, roleName, hex string) error {
	role, err := domain.ParseColorRole(roleName)
	if err != nil {
		return err
	}
	if !role.IsCustomizable() {
		return fmt.Errorf("%w: %s", domain.ErrRoleNotCustomizable, role)
	}
	if err := svc.Load(ctx); err != nil {
		return err
	}
	if err := svc.UpdateColors(ctx, map[domain.ColorRole]string{role: hex}); err != nil {
		return err
	}

	saved, err := svc.Color(role)
	if err != nil {
		return err
	}
	fmt.Printf("%s set to %s\n", role, saved)
	return nil
}

// ThemeResetCmd removes every custom color
type ThemeResetCmd struct{}

// Run executes the reset command
func (t *ThemeResetCmd) Run(cli *CLI) error {
	if err := cli.Container.ThemeService.ResetColors(context.Background()); err != nil {
		return err
	}
	fmt.Println("Custom colors removed")
	return nil
}

// ThemeDarkModeCmd changes the stored mode
type ThemeDarkModeCmd struct {
	Mode string `arg:"" help:"on, off or toggle" enum:"on,off,toggle"`
}

// Run executes the dark-mode command
func (t *ThemeDarkModeCmd) Run(cli *CLI) error {
	darkMode, err := applyDarkMode(context.Background(), cli.Container.ThemeService, t.Mode)
	if err != nil {
		return err
	}
	if darkMode {
		fmt.Println("Dark mode on")
	} else {
		fmt.Println("Dark mode off")
	}
	return nil
}

func applyDarkMode(ctx context.Context, svc *services.ThemeService, mode string) (bool, error) {
	if err := svc.Load(ctx); err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, svc.SetDarkMode(ctx, true)
	case "off":
		return false, svc.SetDarkMode(ctx, false)
	case "toggle":
		return svc.ToggleDarkMode(ctx)
	}
	return false, fmt.Errorf("unknown mode %q", mode)
}
