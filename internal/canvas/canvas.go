// Package canvas provides the immediate-mode 2D drawing surface used by the
// game: a raster implementation on top of fogleman/gg for real hosts and a
// recording implementation for tests and headless inspection.
package canvas

import "github.com/vovakirdan/tui-worm/internal/core"

// Align is the horizontal anchor of FillText.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of FillText.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineMiddle
)

// Context is a 2D immediate-mode drawing context. Coordinates are buffer
// pixels with the origin at the top-left corner.
type Context interface {
	SetFillStyle(c core.Color)
	SetStrokeStyle(c core.Color)
	SetLineWidth(w float64)

	FillRect(x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1 float64)
	FillCircle(x, y, r float64)

	SetFont(size float64)
	SetTextAlign(a Align)
	SetTextBaseline(b Baseline)
	FillText(text string, x, y float64)
}

// Surface is a canvas element: a pixel buffer of Width×Height shown on the
// page at DisplaySize. The two differ by the scale factor the game applies
// for crisp lines.
type Surface interface {
	Resize(w, h int)
	SetDisplaySize(w, h float64)
	Width() int
	Height() int
	DisplaySize() (w, h float64)
	Context() Context
}

// anchors returns the DrawStringAnchored factors for an alignment pair.
func anchors(a Align, b Baseline) (ax, ay float64) {
	switch a {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	switch b {
	case BaselineTop:
		ay = 1
	case BaselineMiddle:
		ay = 0.5
	}
	return ax, ay
}
