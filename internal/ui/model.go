package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swatch/internal/color"
	"github.com/renato0307/swatch/internal/config"
	"github.com/renato0307/swatch/internal/domain"
	"github.com/renato0307/swatch/internal/logging"
	"github.com/renato0307/swatch/internal/services"
	"github.com/renato0307/swatch/internal/theme"
)

type uiState int

const (
	stateTheme uiState = iota
	statePicking
)

const (
	// Border and padding of DialogStyle before the dialog content starts
	dialogFrameX = 2
	dialogFrameY = 1

	defaultErrorWidth = 80
	roleNameWidth     = 16
	themeSubtitle     = "Theme"
)

// Model is the theme screen: the palette roles with their swatches.
// Editing a role opens a picker dialog composited over the dimmed screen.
type Model struct {
	blend        string
	devMode      bool
	errorManager *ErrorManager
	geom         PickerGeometry
	grid         bool // Use the preset grid instead of the wheel
	height       int
	help         help.Model
	keys         KeyMap
	pickerDialog *Dialog
	pickingRole  domain.ColorRole
	saved        *colorSavedMsg // Set by the save callback while the dialog is confirming
	selected     int
	state        uiState
	themeService *services.ThemeService
	width        int
}

func NewModel(
	themeService *services.ThemeService,
	geom PickerGeometry,
	errorClearDelay time.Duration,
	devMode bool,
	grid bool,
	blend string,
	keysConfig config.KeyBindingsConfig,
) *Model {
	return &Model{
		blend:        blend,
		devMode:      devMode,
		errorManager: NewErrorManager(errorClearDelay),
		geom:         geom,
		grid:         grid,
		help:         help.New(),
		keys:         NewKeyMap(keysConfig),
		state:        stateTheme,
		themeService: themeService,
	}
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return themeLoadedMsg{Err: m.themeService.Load(context.Background())}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case themeLoadedMsg:
		if msg.Err != nil {
			return m, m.showError(fmt.Errorf("failed to load theme: %w", msg.Err))
		}
		return m, nil

	case colorSavedMsg:
		if msg.Err != nil {
			return m, m.showError(fmt.Errorf("failed to save %s color: %w", msg.Role, msg.Err))
		}
		logging.Logger.Info("Color saved", "role", msg.Role, "hex", msg.Hex)
		return m, nil

	case darkModeChangedMsg:
		if msg.Err != nil {
			return m, m.showError(msg.Err)
		}
		return m, nil

	case colorsResetMsg:
		if msg.Err != nil {
			return m, m.showError(msg.Err)
		}
		return m, nil
	}

	if m.state == statePicking {
		return m.updatePicking(msg)
	}
	return m.updateTheme(msg)
}

func (m *Model) updateTheme(msg tea.Msg) (tea.Model, tea.Cmd) {
	roles := m.themeService.Colors().SortedRoles()

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx := msg.Y - m.listTop()
		if idx < 0 || idx >= len(roles) {
			return m, nil
		}
		// A click on the selected row edits it
		if idx == m.selected {
			return m.editRole(roles[idx])
		}
		m.selected = idx

	case tea.KeyMsg:
		tk := m.keys.Theme
		switch {
		case key.Matches(msg, m.keys.Application.Quit, m.keys.Application.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, tk.NextRole):
			if m.selected < len(roles)-1 {
				m.selected++
			}
		case key.Matches(msg, tk.PrevRole):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, tk.Edit):
			if m.selected < len(roles) {
				return m.editRole(roles[m.selected])
			}
		case key.Matches(msg, tk.ToggleDark):
			return m, m.toggleDarkMode()
		case key.Matches(msg, tk.Reset):
			return m, m.resetColors()
		case key.Matches(msg, m.keys.Application.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// editRole opens a picker dialog on the role's current color
func (m *Model) editRole(role domain.ColorRole) (tea.Model, tea.Cmd) {
	if !role.IsCustomizable() {
		return m, m.showError(fmt.Errorf("%w: %s", domain.ErrRoleNotCustomizable, role))
	}

	m.saved = nil
	ctrl, err := m.themeService.OpenPicker(context.Background(), role, m.geom.Layout(), func(hex string, err error) {
		m.saved = &colorSavedMsg{Err: err, Hex: hex, Role: role}
	})
	if ctrl == nil {
		return m, m.showError(fmt.Errorf("failed to open picker: %w", err))
	}

	var cmds []tea.Cmd
	if err != nil {
		// The picker still opens, starting from the default color
		cmds = append(cmds, m.showError(err))
	}

	var content tea.Model
	if m.grid {
		content = NewGridView(ctrl, m.keys)
	} else {
		content = NewPickerView(ctrl, m.geom, m.keys, m.blend)
	}
	m.pickerDialog = NewDialog(fmt.Sprintf("Edit %s color", role), content, m.devMode)
	m.pickingRole = role
	m.state = statePicking

	logging.Logger.Debug("Picker dialog opened", "role", role, "picker_id", ctrl.ID(), "grid", m.grid)
	cmds = append(cmds, m.pickerDialog.Init())
	return m, tea.Batch(cmds...)
}

func (m *Model) updatePicking(msg tea.Msg) (tea.Model, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		msg = m.toDialogCoordinates(mouse)
	}

	updated, cmd := m.pickerDialog.Update(msg)
	m.pickerDialog = updated.(*Dialog)

	result, done := pickerOutcome(m.pickerDialog.Content())
	if !done {
		return m, cmd
	}

	role := m.pickingRole
	m.state = stateTheme
	m.pickerDialog = nil
	m.pickingRole = ""

	if result.Cancelled || m.saved == nil {
		logging.Logger.Debug("Picker dialog closed without saving", "role", role)
		return m, nil
	}

	saved := *m.saved
	m.saved = nil
	return m, func() tea.Msg { return saved }
}

// toDialogCoordinates makes a screen position relative to the dialog's top-left content cell
func (m *Model) toDialogCoordinates(mouse tea.MouseMsg) tea.MouseMsg {
	overlay := theme.DialogStyle.Render(m.pickerDialog.View())
	x, y := overlayOrigin(overlay, m.width, m.height)
	mouse.X -= x + dialogFrameX
	mouse.Y -= y + dialogFrameY
	return mouse
}

// pickerOutcome reports whether a picker view has finished and how
func pickerOutcome(content tea.Model) (PickerResult, bool) {
	switch v := content.(type) {
	case *PickerView:
		return v.Result(), v.Completed
	case *GridView:
		return v.Result(), v.Completed
	}
	return PickerResult{}, false
}

func (m *Model) toggleDarkMode() tea.Cmd {
	return func() tea.Msg {
		darkMode, err := m.themeService.ToggleDarkMode(context.Background())
		return darkModeChangedMsg{DarkMode: darkMode, Err: err}
	}
}

func (m *Model) resetColors() tea.Cmd {
	return func() tea.Msg {
		return colorsResetMsg{Err: m.themeService.ResetColors(context.Background())}
	}
}

func (m *Model) showError(err error) tea.Cmd {
	logging.Logger.Warn("Showing error", "error", err)
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

// listTop is the screen row of the first role
func (m *Model) listTop() int {
	return strings.Count(renderHeader(m.devMode, themeSubtitle), "\n")
}

// Editing reports whether a picker dialog is open
func (m *Model) Editing() bool {
	return m.state == statePicking
}

func (m *Model) View() string {
	background := m.renderTheme()
	if m.state == statePicking && m.pickerDialog != nil {
		overlay := theme.DialogStyle.Render(m.pickerDialog.View())
		return compositeOverlay(background, overlay, m.width, m.height)
	}
	return background
}

func (m *Model) renderTheme() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, themeSubtitle))

	colors := m.themeService.Colors()
	for i, role := range colors.SortedRoles() {
		b.WriteString(m.renderRole(i, role, colors[role]))
		b.WriteString("\n")
	}

	mode := "light"
	if m.themeService.IsDarkMode() {
		mode = "dark"
	}
	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render("Mode ") + theme.HexStyle.Render(mode))
	b.WriteString("\n")

	// Fixed error line so the help bar does not jump
	width := m.width
	if width == 0 {
		width = defaultErrorWidth
	}
	if m.errorManager.HasError() {
		b.WriteString(m.errorManager.View(width))
	}
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(themeHelp{app: m.keys.Application, theme: m.keys.Theme})))
	return b.String()
}

func (m *Model) renderRole(idx int, role domain.ColorRole, hex string) string {
	cursor, style := "  ", theme.RowStyle
	if idx == m.selected {
		cursor, style = "▸ ", theme.RowSelectedStyle
	}

	line := cursor + renderSwatchLabel(hex) + " " + style.Render(fmt.Sprintf("%-*s", roleNameWidth, role))
	if !role.IsCustomizable() {
		line += " " + theme.LockedStyle.Render("locked")
	}
	return line
}

// renderSwatchLabel prints the hex on its own color, or flags a value that is not a color
func renderSwatchLabel(hex string) string {
	hsl, err := color.HexToHSL(hex)
	if err != nil {
		return theme.ErrorStyle.Render(fmt.Sprintf(" %-7s ", hex))
	}
	return theme.SwatchStyle(hex).
		Foreground(theme.ContrastText(hsl.L)).
		Render(" " + hex + " ")
}
