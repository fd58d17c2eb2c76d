package ui

import (
	"github.com/renato0307/swatch/internal/geometry"
	"github.com/renato0307/swatch/internal/picker"
)

// A terminal cell is one picker unit wide and two units tall, so a ring of
// diameter d spans d columns and d/2 rows and still looks round.
const (
	cellUnitsX = 1.0
	cellUnitsY = 2.0

	presetCellWidth = 3
	trackLabelWidth = 3
)

// PickerGeometry places the picker's controls on the terminal grid
type PickerGeometry struct {
	LightnessRow  int
	PresetRow     int
	SaturationRow int
	Segments      int
	Size          int
	Thickness     int
	TrackLength   int
	WheelRows     int
}

// NewPickerGeometry lays the controls out below a wheel of the given size in units.
// Odd sizes are rounded up so the wheel fills whole rows.
func NewPickerGeometry(size, thickness, trackLength, segments int) PickerGeometry {
	if size%2 != 0 {
		size++
	}
	wheelRows := size / 2
	return PickerGeometry{
		LightnessRow:  wheelRows + 2,
		PresetRow:     wheelRows + 4,
		SaturationRow: wheelRows + 1,
		Segments:      segments,
		Size:          size,
		Thickness:     thickness,
		TrackLength:   trackLength,
		WheelRows:     wheelRows,
	}
}

// Layout converts the grid placement to controller geometry in picker units
func (g PickerGeometry) Layout() picker.Layout {
	return picker.Layout{
		Ring:       geometry.NewRing(float64(g.Size), float64(g.Thickness), geometry.DefaultTolerance),
		Saturation: g.track(g.SaturationRow),
		Lightness:  g.track(g.LightnessRow),
	}
}

func (g PickerGeometry) track(row int) geometry.Track {
	return geometry.Track{
		Length:      float64(g.TrackLength),
		OriginX:     trackLabelWidth * cellUnitsX,
		OriginY:     (float64(row) + 0.5) * cellUnitsY,
		ThumbRadius: cellUnitsY / 2,
	}
}

// cellCenter returns the picker coordinates of the center of a cell
func cellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * cellUnitsX, (float64(row) + 0.5) * cellUnitsY
}

// presetAt returns the preset index under a cell, or -1
func (g PickerGeometry) presetAt(col, row, count int) int {
	if row != g.PresetRow || col < 0 {
		return -1
	}
	if col%presetCellWidth == presetCellWidth-1 {
		return -1 // gap
	}
	idx := col / presetCellWidth
	if idx >= count {
		return -1
	}
	return idx
}
