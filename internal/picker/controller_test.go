package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swatch/internal/color"
	"github.com/renato0307/swatch/internal/geometry"
)

// ring centered at (20, 20) with radii 12..20, tracks below it
func testLayout() Layout {
	return Layout{
		Ring:       geometry.NewRing(40, 8, geometry.DefaultTolerance),
		Saturation: geometry.Track{Length: 40, OriginX: 0, OriginY: 46, ThumbRadius: 1},
		Lightness:  geometry.Track{Length: 40, OriginX: 0, OriginY: 50, ThumbRadius: 1},
	}
}

type recorder struct {
	calls []string
}

func (r *recorder) onSelect(hex string) {
	r.calls = append(r.calls, hex)
}

func openController(t *testing.T, hex string) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := NewController(testLayout())
	require.NoError(t, c.Open(hex, rec.onSelect))
	return c, rec
}

func TestController_DragWheelAndConfirm(t *testing.T) {
	c, rec := openController(t, "#007AFF")

	assert.Equal(t, StateReady, c.State())
	assert.InDelta(t, 211.29, c.HSL().H, 0.01)
	assert.Equal(t, 100.0, c.HSL().S)
	assert.InDelta(t, 50, c.HSL().L, 1e-9)

	target := c.PointerDown(39, 20)
	assert.Equal(t, TargetWheel, target)
	assert.Equal(t, StateDragging, c.State())
	assert.InDelta(t, 0, c.HSL().H, 1e-9)
	assert.Equal(t, "#FF0000", c.Hex())

	c.PointerMove(20, 39)
	assert.InDelta(t, 90, c.HSL().H, 1e-9)
	c.PointerMove(39, 20)

	c.PointerUp()
	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, TargetNone, c.Target())

	hex := c.Confirm()
	assert.Equal(t, "#FF0000", hex)
	assert.Equal(t, []string{"#FF0000"}, rec.calls)
	assert.Equal(t, StateConfirmed, c.State())
	assert.False(t, c.Active())

	assert.Panics(t, func() { c.Confirm() })
	assert.Len(t, rec.calls, 1)
}

func TestController_WheelDragKeepsSaturationAndLightness(t *testing.T) {
	c, _ := openController(t, "#34C759")
	before := c.HSL()

	c.PointerDown(20, 1)
	c.PointerMove(1, 20)
	c.PointerMove(30, 36)

	after := c.HSL()
	assert.Equal(t, before.S, after.S)
	assert.Equal(t, before.L, after.L)
	assert.NotEqual(t, before.H, after.H)
}

func TestController_ConfirmWhileDragging(t *testing.T) {
	c, rec := openController(t, "#007AFF")

	c.PointerDown(39, 20)
	hex := c.Confirm()

	assert.Equal(t, "#FF0000", hex)
	assert.Equal(t, []string{"#FF0000"}, rec.calls)
	assert.Equal(t, StateConfirmed, c.State())
}

func TestController_CancelNeverCallsBack(t *testing.T) {
	c, rec := openController(t, "#007AFF")

	c.PointerDown(39, 20)
	c.PointerUp()
	c.Cancel()

	assert.Equal(t, StateCancelled, c.State())
	assert.Empty(t, rec.calls)
	assert.Panics(t, func() { c.Confirm() })
	assert.Panics(t, func() { c.PointerDown(39, 20) })
	assert.Empty(t, rec.calls)
}

func TestController_FreshOpenStartsFromInitial(t *testing.T) {
	first, _ := openController(t, "#007AFF")
	first.PointerDown(39, 20)
	first.Cancel()

	second, _ := openController(t, "#007AFF")
	assert.InDelta(t, 211.29, second.HSL().H, 0.01)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestController_LightnessExtremes(t *testing.T) {
	c, rec := openController(t, "#FF0000")

	target := c.PointerDown(0, 50)
	require.Equal(t, TargetLightness, target)
	c.PointerMove(-100, 50)
	assert.Equal(t, float64(geometry.LightnessMin), c.HSL().L)
	assert.Equal(t, "#330000", c.Hex())

	c.PointerMove(500, 50)
	assert.Equal(t, float64(geometry.LightnessMax), c.HSL().L)
	assert.Equal(t, "#FFCCCC", c.Hex())

	c.PointerUp()
	c.Confirm()
	assert.Equal(t, []string{"#FFCCCC"}, rec.calls)
}

func TestController_SaturationDrag(t *testing.T) {
	c, _ := openController(t, "#FF0000")

	target := c.PointerDown(20, 46)
	require.Equal(t, TargetSaturation, target)
	assert.InDelta(t, 50, c.HSL().S, 1e-9)
	assert.InDelta(t, 0, c.HSL().H, 1e-9)
	assert.InDelta(t, 50, c.HSL().L, 1e-9)
	assert.InDelta(t, 20, c.SaturationThumb(), 1e-9)

	c.PointerMove(-10, 80)
	assert.Equal(t, 0.0, c.HSL().S)
	assert.Equal(t, "#808080", c.Hex())
}

func TestController_PointerMissStaysReady(t *testing.T) {
	c, _ := openController(t, "#007AFF")
	before := c.HSL()

	assert.Equal(t, TargetNone, c.PointerDown(20, 20))
	assert.Equal(t, StateReady, c.State())

	c.PointerMove(39, 20)
	assert.Equal(t, before, c.HSL())
}

func TestController_PointerDownWhileDraggingRetargets(t *testing.T) {
	c, _ := openController(t, "#007AFF")

	c.PointerDown(39, 20)
	target := c.PointerDown(40, 50)

	assert.Equal(t, TargetLightness, target)
	assert.Equal(t, StateDragging, c.State())
	assert.InDelta(t, 0, c.HSL().H, 1e-9)
	assert.Equal(t, float64(geometry.LightnessMax), c.HSL().L)
}

func TestController_OpenInvalidStaysIdle(t *testing.T) {
	c := NewController(testLayout())
	rec := &recorder{}

	err := c.Open("blue", rec.onSelect)
	require.Error(t, err)
	assert.ErrorIs(t, err, color.ErrInvalidColorFormat)
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Open(color.DefaultColor, rec.onSelect))
	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, color.DefaultColor, c.Hex())
}

func TestController_SelectHex(t *testing.T) {
	c, rec := openController(t, "#007AFF")

	require.NoError(t, c.SelectHex(color.Presets[3]))
	assert.Equal(t, color.Presets[3], c.Hex())

	err := c.SelectHex("#12")
	assert.ErrorIs(t, err, color.ErrInvalidColorFormat)
	assert.Equal(t, color.Presets[3], c.Hex())

	c.Confirm()
	assert.Equal(t, []string{color.Presets[3]}, rec.calls)
}

func TestController_Nudge(t *testing.T) {
	c, _ := openController(t, "#007AFF")

	c.Nudge(TargetWheel, 200)
	assert.InDelta(t, 51.29, c.HSL().H, 0.01)

	c.Nudge(TargetSaturation, 30)
	assert.Equal(t, 100.0, c.HSL().S)
	c.Nudge(TargetSaturation, -250)
	assert.Equal(t, 0.0, c.HSL().S)

	c.Nudge(TargetLightness, -100)
	assert.Equal(t, float64(geometry.LightnessMin), c.HSL().L)
	c.Nudge(TargetLightness, 100)
	assert.Equal(t, float64(geometry.LightnessMax), c.HSL().L)
}

func TestController_NudgeOutsideSliderRange(t *testing.T) {
	dark, _ := openController(t, "#050505")
	before := dark.HSL().L
	require.Less(t, before, float64(geometry.LightnessMin))

	dark.Nudge(TargetLightness, -1)
	assert.Equal(t, before, dark.HSL().L, "decrease must not raise lightness")
	dark.Nudge(TargetLightness, 1)
	assert.Equal(t, float64(geometry.LightnessMin), dark.HSL().L)

	light, _ := openController(t, "#FAFAFA")
	before = light.HSL().L
	require.Greater(t, before, float64(geometry.LightnessMax))

	light.Nudge(TargetLightness, 1)
	assert.Equal(t, before, light.HSL().L, "increase must not lower lightness")
	light.Nudge(TargetLightness, -1)
	assert.Equal(t, float64(geometry.LightnessMax), light.HSL().L)
}

func TestController_ContractViolations(t *testing.T) {
	idle := NewController(testLayout())

	assert.Panics(t, func() { idle.PointerDown(0, 0) })
	assert.Panics(t, func() { idle.PointerMove(0, 0) })
	assert.Panics(t, func() { idle.PointerUp() })
	assert.Panics(t, func() { idle.Confirm() })
	assert.Panics(t, func() { idle.Cancel() })
	assert.Panics(t, func() { _ = idle.Open("#FFFFFF", nil) })

	ready, _ := openController(t, "#FFFFFF")
	assert.Panics(t, func() { _ = ready.Open("#FFFFFF", func(string) {}) })

	defer func() {
		r := recover()
		cerr, ok := r.(*ContractError)
		require.True(t, ok)
		assert.Equal(t, "cancel", cerr.Op)
		assert.Equal(t, StateIdle, cerr.State)
		assert.Contains(t, cerr.Error(), "idle")
	}()
	idle.Cancel()
}

func TestController_Thumbs(t *testing.T) {
	c, _ := openController(t, "#FF0000")

	x, y := c.IndicatorPosition()
	assert.InDelta(t, 36, x, 1e-9)
	assert.InDelta(t, 20, y, 1e-9)
	assert.InDelta(t, 40, c.SaturationThumb(), 1e-9)
	assert.InDelta(t, 20, c.LightnessThumb(), 1e-9)
}

func TestStateAndTargetStrings(t *testing.T) {
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "state(9)", State(9).String())
	assert.Equal(t, "lightness", TargetLightness.String())
	assert.Equal(t, "target(7)", Target(7).String())
}
