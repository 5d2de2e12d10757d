package tui

import (
	"math"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// Viewport places the canvas inside the terminal. The canvas is shown as an
// image of PixW×PixH pixels, two pixels per cell vertically, with its top left
// at cell (X, Y).
type Viewport struct {
	X, Y       int
	PixW, PixH int

	// On-page size of the canvas; touches are reported in this space.
	DisplayW, DisplayH float64
}

// FitViewport fits a canvas of the given display size into area, keeping the
// aspect ratio and centering the image.
func FitViewport(area core.Rect, displayW, displayH float64) Viewport {
	vp := Viewport{DisplayW: displayW, DisplayH: displayH}
	if area.W <= 0 || area.H <= 0 || displayW <= 0 || displayH <= 0 {
		return vp
	}

	availW := float64(area.W)
	availH := float64(area.H * 2)
	if availW/displayW <= availH/displayH {
		vp.PixW = area.W
		vp.PixH = max(1, int(math.Floor(displayH*availW/displayW)))
	} else {
		vp.PixW = max(1, int(math.Floor(displayW*availH/displayH)))
		vp.PixH = area.H * 2
	}

	cells := area.Centered(vp.PixW, vp.Rows())
	vp.X, vp.Y = cells.X, cells.Y
	return vp
}

// Rows returns how many terminal rows the image covers.
func (v Viewport) Rows() int {
	return (v.PixH + 1) / 2
}

// Contains reports whether terminal cell (col, row) shows part of the canvas.
func (v Viewport) Contains(col, row int) bool {
	return core.NewRect(v.X, v.Y, v.PixW, v.Rows()).Contains(col, row)
}

// ToPage maps the centre of terminal cell (col, row) to page pixels.
// Cells outside the image are clamped to its edge.
func (v Viewport) ToPage(col, row int) (float64, float64) {
	if v.PixW == 0 || v.PixH == 0 {
		return 0, 0
	}
	px := (float64(col-v.X) + 0.5) / float64(v.PixW)
	py := (float64(row-v.Y)*2 + 1) / float64(v.PixH)
	return core.ClampF(px, 0, 1) * v.DisplayW, core.ClampF(py, 0, 1) * v.DisplayH
}
