package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/swatch/internal/color"
	"github.com/renato0307/swatch/internal/geometry"
	"github.com/renato0307/swatch/internal/logging"
	"github.com/renato0307/swatch/internal/picker"
	"github.com/renato0307/swatch/internal/theme"
)

// Blend modes for the slider tracks and the before/after strip
const (
	BlendHSL = "hsl"
	BlendRGB = "rgb"
)

const (
	fineStep      = 1
	coarseStep    = 10
	hueCoarseStep = 15
	previewWidth  = 12
)

// PickerResult contains the outcome of a picker
type PickerResult struct {
	Cancelled bool
	Hex       string
}

// PickerView renders a picker controller and feeds it terminal input.
// Mouse coordinates must be relative to the view's top-left cell.
type PickerView struct {
	Completed bool
	blend     string
	ctrl      *picker.Controller
	focus     picker.Target
	formErr   error
	geom      PickerGeometry
	help      help.Model
	hexForm   *huh.Form
	hexValue  string
	initial   color.HSL
	keys      KeyMap
	result    PickerResult
	segments  []color.Segment
}

// NewPickerView creates a view for an opened controller whose layout came from geom
func NewPickerView(ctrl *picker.Controller, geom PickerGeometry, keys KeyMap, blend string) *PickerView {
	if blend != BlendRGB {
		blend = BlendHSL
	}
	return &PickerView{
		blend:    blend,
		ctrl:     ctrl,
		focus:    picker.TargetWheel,
		geom:     geom,
		help:     help.New(),
		initial:  ctrl.HSL(),
		keys:     keys,
		segments: color.WheelSegments(geom.Segments, 100, 50),
	}
}

func (v *PickerView) Init() tea.Cmd {
	return nil
}

func (v *PickerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.Completed || !v.ctrl.Active() {
		return v, nil
	}

	if v.hexForm != nil {
		return v.updateHexForm(msg)
	}

	switch msg := msg.(type) {
	case hexEnteredMsg:
		v.applyHex(msg.Hex)
		return v, nil

	case tea.MouseMsg:
		v.handleMouse(msg)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *PickerView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pk := v.keys.Picker

	switch {
	case key.Matches(msg, pk.Confirm):
		v.result = PickerResult{Hex: v.ctrl.Confirm()}
		v.Completed = true

	case key.Matches(msg, pk.Cancel), key.Matches(msg, v.keys.Application.ForceQuit):
		v.ctrl.Cancel()
		v.result = PickerResult{Cancelled: true}
		v.Completed = true

	case key.Matches(msg, pk.FocusNext):
		v.focus = nextFocus(v.focus, 1)

	case key.Matches(msg, pk.FocusPrev):
		v.focus = nextFocus(v.focus, -1)

	case key.Matches(msg, pk.Decrease):
		v.nudge(-1, false)

	case key.Matches(msg, pk.DecreaseMore):
		v.nudge(-1, true)

	case key.Matches(msg, pk.Increase):
		v.nudge(1, false)

	case key.Matches(msg, pk.IncreaseMore):
		v.nudge(1, true)

	case key.Matches(msg, pk.HexInput):
		return v, v.openHexForm()

	case key.Matches(msg, pk.Preset):
		for i, k := range pk.Preset.Keys() {
			if k == msg.String() && i < len(color.Presets) {
				v.applyHex(color.Presets[i])
				break
			}
		}

	case key.Matches(msg, v.keys.Application.Help):
		v.help.ShowAll = !v.help.ShowAll
	}

	return v, nil
}

func (v *PickerView) handleMouse(msg tea.MouseMsg) {
	x, y := cellCenter(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.nudge(1, false)
			return
		case tea.MouseButtonWheelDown:
			v.nudge(-1, false)
			return
		case tea.MouseButtonLeft:
		default:
			return
		}

		if idx := v.geom.presetAt(msg.X, msg.Y, len(color.Presets)); idx >= 0 {
			v.applyHex(color.Presets[idx])
			return
		}
		if target := v.ctrl.PointerDown(x, y); target != picker.TargetNone {
			v.focus = target
		}

	case tea.MouseActionMotion:
		v.ctrl.PointerMove(x, y)

	case tea.MouseActionRelease:
		v.ctrl.PointerUp()
	}
}

func (v *PickerView) nudge(direction float64, coarse bool) {
	step := float64(fineStep)
	if coarse {
		step = coarseStep
		if v.focus == picker.TargetWheel {
			step = hueCoarseStep
		}
	}
	v.ctrl.Nudge(v.focus, direction*step)
}

func (v *PickerView) applyHex(hex string) {
	if err := v.ctrl.SelectHex(hex); err != nil {
		logging.Logger.Warn("Rejected color", "hex", hex, "error", err)
		v.formErr = err
		return
	}
	v.formErr = nil
}

func (v *PickerView) openHexForm() tea.Cmd {
	v.hexValue = ""
	v.hexForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hex color").
				Description("#RRGGBB").
				Placeholder(v.ctrl.Hex()).
				Value(&v.hexValue).
				Validate(func(s string) error {
					_, err := color.HexToHSL(normalizeHexInput(s))
					return err
				}),
		),
	).WithShowHelp(false)
	return v.hexForm.Init()
}

func (v *PickerView) updateHexForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, v.keys.Picker.Cancel) {
		v.hexForm = nil
		return v, nil
	}
	// The form owns the keyboard; the picker stays under the mouse
	if mouse, ok := msg.(tea.MouseMsg); ok {
		v.handleMouse(mouse)
		return v, nil
	}

	form, cmd := v.hexForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.hexForm = f
	}

	switch v.hexForm.State {
	case huh.StateCompleted:
		hex := normalizeHexInput(v.hexValue)
		v.hexForm = nil
		return v, func() tea.Msg { return hexEnteredMsg{Hex: hex} }
	case huh.StateAborted:
		v.hexForm = nil
		return v, nil
	}
	return v, cmd
}

// Result returns the picker outcome once Completed is set
func (v *PickerView) Result() PickerResult {
	return v.result
}

// Controller returns the driven controller
func (v *PickerView) Controller() *picker.Controller {
	return v.ctrl
}

// Focus returns the control the keyboard acts on
func (v *PickerView) Focus() picker.Target {
	return v.focus
}

func (v *PickerView) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, v.renderWheel(), "  ", v.renderPreview()))
	b.WriteString("\n\n")
	b.WriteString(v.renderTrack(picker.TargetSaturation))
	b.WriteString("\n")
	b.WriteString(v.renderTrack(picker.TargetLightness))
	b.WriteString("\n\n")
	b.WriteString(v.renderPresets())
	b.WriteString("\n")

	if v.hexForm != nil {
		b.WriteString("\n")
		b.WriteString(v.hexForm.View())
		b.WriteString("\n")
	}
	if v.formErr != nil {
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(v.formErr, v.geom.Size+previewWidth)))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(v.help.View(pickerHelp{app: v.keys.Application, picker: v.keys.Picker})))
	return b.String()
}

func (v *PickerView) renderWheel() string {
	ring := v.ctrl.Layout().Ring
	current := v.ctrl.Hex()
	ix, iy := v.ctrl.IndicatorPosition()
	indicatorCol := int(math.Floor(ix / cellUnitsX))
	indicatorRow := int(math.Floor(iy / cellUnitsY))

	lines := make([]string, v.geom.WheelRows)
	for row := 0; row < v.geom.WheelRows; row++ {
		var line strings.Builder
		for col := 0; col < v.geom.Size; col++ {
			top := v.sampleWheel(ring, col, row, 0, current)
			bottom := v.sampleWheel(ring, col, row, 1, current)
			if col == indicatorCol && row == indicatorRow {
				line.WriteString(indicatorCell(top, bottom))
				continue
			}
			line.WriteString(halfBlock(top, bottom))
		}
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

// sampleWheel returns the color of the upper (half=0) or lower (half=1) half of a cell, or ""
func (v *PickerView) sampleWheel(ring geometry.Ring, col, row, half int, current string) string {
	x := (float64(col) + 0.5) * cellUnitsX
	y := (float64(row) + 0.25 + 0.5*float64(half)) * cellUnitsY
	d := math.Hypot(x-ring.CenterX, y-ring.CenterY)

	switch {
	case d >= ring.InnerRadius() && d <= ring.OuterRadius:
		return color.SegmentAt(v.segments, ring.Angle(x, y)).Hex
	case d < ring.InnerRadius()-1:
		return current
	}
	return ""
}

func (v *PickerView) renderPreview() string {
	hsl := v.ctrl.HSL()
	current := hsl.Hex()

	hueLabel := theme.LabelStyle
	if v.focus == picker.TargetWheel {
		hueLabel = theme.FocusedLabelStyle
	}

	swatch := theme.SwatchStyle(current).Render(strings.Repeat(" ", previewWidth))

	var strip strings.Builder
	var stops []string
	if v.blend == BlendRGB {
		stops = color.GradientRGB(v.initial, hsl, previewWidth)
	} else {
		stops = color.GradientHSL(v.initial, hsl, previewWidth)
	}
	for _, stop := range stops {
		strip.WriteString(theme.SwatchStyle(stop).Render(" "))
	}

	lines := []string{
		theme.LabelStyle.Render("Selected"),
		swatch,
		swatch,
		theme.HexStyle.Render(current),
		theme.NormalStyle.Render(hsl.String()),
		hueLabel.Render(fmt.Sprintf("Hue %d°", int(math.Round(hsl.H))%360)),
		"",
		strip.String(),
		theme.LabelStyle.Render("was " + v.initial.Hex()),
	}

	// Must not push the tracks down
	if len(lines) > v.geom.WheelRows {
		lines = lines[:v.geom.WheelRows]
	}
	return strings.Join(lines, "\n")
}

func (v *PickerView) renderTrack(target picker.Target) string {
	hsl := v.ctrl.HSL()

	label, thumb, value := "S", v.ctrl.SaturationThumb(), hsl.S
	if target == picker.TargetLightness {
		label, thumb, value = "L", v.ctrl.LightnessThumb(), hsl.L
	}

	labelStyle := theme.LabelStyle
	if v.focus == target {
		labelStyle = theme.FocusedLabelStyle
	}

	thumbCell := int(math.Floor(thumb))
	if thumbCell >= v.geom.TrackLength {
		thumbCell = v.geom.TrackLength - 1
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", trackLabelWidth, label)))
	for i, hex := range v.trackColors(target) {
		if i == thumbCell {
			b.WriteString(theme.ThumbStyle.Background(lipgloss.Color(hex)).Render("┃"))
			continue
		}
		b.WriteString(theme.SwatchStyle(hex).Render(" "))
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf(" %3d%%", int(math.Round(value)))))
	return b.String()
}

// trackColors paints one cell per unit of a slider, spanning its reachable range
func (v *PickerView) trackColors(target picker.Target) []string {
	hsl := v.ctrl.HSL()
	steps := v.geom.TrackLength

	if target == picker.TargetLightness {
		if v.blend == BlendRGB {
			return color.GradientRGB(
				color.HSL{H: hsl.H, S: hsl.S, L: geometry.LightnessMin},
				color.HSL{H: hsl.H, S: hsl.S, L: geometry.LightnessMax},
				steps)
		}
		return color.LightnessGradient(hsl.H, hsl.S, geometry.LightnessMin, geometry.LightnessMax, steps)
	}

	if v.blend == BlendRGB {
		return color.GradientRGB(
			color.HSL{H: hsl.H, S: geometry.SaturationMin, L: hsl.L},
			color.HSL{H: hsl.H, S: geometry.SaturationMax, L: hsl.L},
			steps)
	}
	return color.SaturationGradient(hsl.H, hsl.L, steps)
}

func (v *PickerView) renderPresets() string {
	current := v.ctrl.Hex()
	var b strings.Builder
	for _, p := range color.Presets {
		cell := "  "
		if p == current {
			cell = "••"
		}
		b.WriteString(theme.ThumbStyle.Background(lipgloss.Color(p)).Render(cell))
		b.WriteString(strings.Repeat(" ", presetCellWidth-2))
	}
	return b.String()
}

func halfBlock(top, bottom string) string {
	switch {
	case top != "" && bottom != "":
		return theme.CellStyle(top, bottom).Render("▀")
	case top != "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Render("▀")
	case bottom != "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottom)).Render("▄")
	}
	return " "
}

func indicatorCell(top, bottom string) string {
	style := theme.ThumbStyle
	if bg := firstNonEmpty(top, bottom); bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style.Render("●")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// nextFocus cycles wheel → saturation → lightness
func nextFocus(current picker.Target, direction int) picker.Target {
	order := []picker.Target{picker.TargetWheel, picker.TargetSaturation, picker.TargetLightness}
	idx := 0
	for i, t := range order {
		if t == current {
			idx = i
		}
	}
	idx = (idx + direction + len(order)) % len(order)
	return order[idx]
}

// normalizeHexInput accepts "ff2d55" or " #FF2D55 "
func normalizeHexInput(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}
