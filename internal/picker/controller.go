// Package picker holds the interaction state machine behind the color picker.
//
// A Controller owns one HSL triple. Pointer events move it through
// Idle → Ready → Dragging → Ready, and Confirm or Cancel end its life.
// Hex values are always derived from the triple on demand.
package picker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/renato0307/swatch/internal/color"
	"github.com/renato0307/swatch/internal/geometry"
	"github.com/renato0307/swatch/internal/logging"
)

// SelectFunc receives the confirmed color
type SelectFunc func(hex string)

// Layout is the geometry of a mounted picker
type Layout struct {
	Lightness  geometry.Track
	Ring       geometry.Ring
	Saturation geometry.Track
}

// Controller is the state holder of a single picker instance.
// It is driven synchronously from one event loop and is not safe for concurrent use.
type Controller struct {
	color    color.HSL
	id       string
	layout   Layout
	onSelect SelectFunc
	state    State
	target   Target
}

// NewController creates an Idle controller for the given layout
func NewController(layout Layout) *Controller {
	return &Controller{
		id:     uuid.New().String(),
		layout: layout,
		state:  StateIdle,
	}
}

// Open initializes the color from initialHex and moves to Ready.
// On ErrInvalidColorFormat the controller stays Idle so the caller can retry with a fallback.
func (c *Controller) Open(initialHex string, onSelect SelectFunc) error {
	c.require("open", StateIdle)
	if onSelect == nil {
		panic(&ContractError{Op: "open without callback", State: c.state})
	}

	hsl, err := color.HexToHSL(initialHex)
	if err != nil {
		logging.Logger.Warn("Picker opened with invalid color",
			"picker_id", c.id,
			"initial", initialHex,
			"error", err)
		return fmt.Errorf("failed to open picker: %w", err)
	}

	c.color = hsl
	c.onSelect = onSelect
	c.state = StateReady
	logging.Logger.Debug("Picker opened",
		"picker_id", c.id,
		"initial", initialHex,
		"hsl", hsl.String())
	return nil
}

// PointerDown hit-tests the ring and both tracks and starts a drag on the control that was hit.
// A press that hits nothing leaves the controller Ready and returns TargetNone.
func (c *Controller) PointerDown(x, y float64) Target {
	c.require("pointer down", StateReady, StateDragging)

	target := c.hitTest(x, y)
	if target == TargetNone {
		c.endDrag()
		return TargetNone
	}

	c.state = StateDragging
	c.target = target
	c.apply(x, y)
	logging.Logger.Debug("Drag started", "picker_id", c.id, "target", target.String())
	return target
}

// PointerMove updates the dragged component. Moves without an active drag are ignored.
func (c *Controller) PointerMove(x, y float64) {
	c.require("pointer move", StateReady, StateDragging)
	if c.state != StateDragging {
		return
	}
	c.apply(x, y)
}

// PointerUp ends an active drag without changing the color
func (c *Controller) PointerUp() {
	c.require("pointer up", StateReady, StateDragging)
	c.endDrag()
}

// SelectHex replaces the whole triple, as picking a preset swatch or typing a value does
func (c *Controller) SelectHex(hex string) error {
	c.require("select", StateReady, StateDragging)

	hsl, err := color.HexToHSL(hex)
	if err != nil {
		return fmt.Errorf("failed to select color: %w", err)
	}

	c.endDrag()
	c.color = hsl
	logging.Logger.Debug("Color selected", "picker_id", c.id, "hex", hex)
	return nil
}

// Nudge moves one component by delta, as the keyboard does.
// Hue wraps; the sliders move toward their reachable ranges, never against delta.
func (c *Controller) Nudge(target Target, delta float64) {
	c.require("nudge", StateReady, StateDragging)

	switch target {
	case TargetWheel:
		c.color.H = color.WrapHue(c.color.H + delta)
	case TargetSaturation:
		c.color.S = nudgeRange(c.color.S, delta, geometry.SaturationMin, geometry.SaturationMax)
	case TargetLightness:
		c.color.L = nudgeRange(c.color.L, delta, geometry.LightnessMin, geometry.LightnessMax)
	}
}

// nudgeRange adds delta and clamps to [lo, hi]. A value already past the
// bound delta points at is left alone, since clamping would move it backwards.
func nudgeRange(v, delta, lo, hi float64) float64 {
	if (delta < 0 && v <= lo) || (delta > 0 && v >= hi) {
		return v
	}
	return clampRange(v+delta, lo, hi)
}

// Confirm derives the final color, hands it to the callback once and ends the picker
func (c *Controller) Confirm() string {
	c.require("confirm", StateReady, StateDragging)

	hex := c.color.Hex()
	onSelect := c.onSelect

	// Terminal before the callback runs, so a re-entrant Confirm cannot fire it twice
	c.state = StateConfirmed
	c.target = TargetNone
	c.onSelect = nil

	logging.Logger.Info("Picker confirmed", "picker_id", c.id, "hex", hex)
	onSelect(hex)
	return hex
}

// Cancel ends the picker without invoking the callback
func (c *Controller) Cancel() {
	c.require("cancel", StateReady, StateDragging)

	c.state = StateCancelled
	c.target = TargetNone
	c.onSelect = nil
	logging.Logger.Info("Picker cancelled", "picker_id", c.id)
}

// HSL returns the current triple
func (c *Controller) HSL() color.HSL {
	return c.color
}

// Hex returns the current color derived from the triple
func (c *Controller) Hex() string {
	return c.color.Hex()
}

// ID identifies the controller in logs
func (c *Controller) ID() string {
	return c.id
}

// Layout returns the geometry the controller was mounted with
func (c *Controller) Layout() Layout {
	return c.layout
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Target returns the control being dragged, or TargetNone
func (c *Controller) Target() Target {
	return c.target
}

// Active reports whether the controller still accepts input
func (c *Controller) Active() bool {
	return c.state == StateReady || c.state == StateDragging
}

// IndicatorPosition is where the hue indicator sits on the ring
func (c *Controller) IndicatorPosition() (x, y float64) {
	return c.layout.Ring.Indicator(c.color.H)
}

// SaturationThumb is the thumb offset along the saturation track
func (c *Controller) SaturationThumb() float64 {
	return geometry.OffsetFromPercent(c.color.S, c.layout.Saturation.Length, geometry.SaturationMin, geometry.SaturationMax)
}

// LightnessThumb is the thumb offset along the lightness track
func (c *Controller) LightnessThumb() float64 {
	return geometry.OffsetFromPercent(c.color.L, c.layout.Lightness.Length, geometry.LightnessMin, geometry.LightnessMax)
}

func (c *Controller) hitTest(x, y float64) Target {
	switch {
	case c.layout.Ring.Contains(x, y):
		return TargetWheel
	case c.layout.Saturation.Contains(x, y):
		return TargetSaturation
	case c.layout.Lightness.Contains(x, y):
		return TargetLightness
	}
	return TargetNone
}

// apply writes only the component owned by the current drag target
func (c *Controller) apply(x, y float64) {
	switch c.target {
	case TargetWheel:
		c.color.H = c.layout.Ring.Angle(x, y)
	case TargetSaturation:
		track := c.layout.Saturation
		c.color.S = geometry.PercentFromOffset(track.Offset(x), track.Length, geometry.SaturationMin, geometry.SaturationMax)
	case TargetLightness:
		track := c.layout.Lightness
		c.color.L = geometry.PercentFromOffset(track.Offset(x), track.Length, geometry.LightnessMin, geometry.LightnessMax)
	}
}

func (c *Controller) endDrag() {
	if c.state == StateDragging {
		logging.Logger.Debug("Drag ended",
			"picker_id", c.id,
			"target", c.target.String(),
			"hsl", c.color.String())
		c.state = StateReady
	}
	c.target = TargetNone
}

func (c *Controller) require(op string, allowed ...State) {
	for _, s := range allowed {
		if c.state == s {
			return
		}
	}
	panic(&ContractError{Op: op, State: c.state})
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
