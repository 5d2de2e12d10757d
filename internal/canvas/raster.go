package canvas

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-worm/internal/core"
)

var (
	regularOnce sync.Once
	regularFont *truetype.Font
	regularErr  error
)

// regular returns the parsed Go Regular font shared by every raster.
func regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = truetype.Parse(goregular.TTF)
	})
	return regularFont, regularErr
}

// Raster is a Surface and Context that draws into an in-memory RGBA image.
type Raster struct {
	dc *gg.Context

	displayW float64
	displayH float64

	fill      core.Color
	stroke    core.Color
	lineWidth float64
	fontSize  float64
	align     Align
	baseline  Baseline

	faces   map[float64]font.Face
	version uint64
}

// NewRaster creates a raster of w×h pixels displayed at the same size.
func NewRaster(w, h int) *Raster {
	r := &Raster{
		fill:      core.ColorBlack,
		stroke:    core.ColorBlack,
		lineWidth: 1,
		fontSize:  10,
		faces:     make(map[float64]font.Face),
	}
	r.Resize(w, h)
	r.displayW, r.displayH = float64(r.Width()), float64(r.Height())
	return r
}

// Resize replaces the pixel buffer. Content is discarded.
func (r *Raster) Resize(w, h int) {
	r.dc = gg.NewContext(max(w, 1), max(h, 1))
	r.version++
}

// SetDisplaySize records the on-page size of the surface.
func (r *Raster) SetDisplaySize(w, h float64) {
	r.displayW, r.displayH = w, h
}

// Width returns the buffer width in pixels.
func (r *Raster) Width() int { return r.dc.Width() }

// Height returns the buffer height in pixels.
func (r *Raster) Height() int { return r.dc.Height() }

// DisplaySize returns the on-page size.
func (r *Raster) DisplaySize() (float64, float64) { return r.displayW, r.displayH }

// Context returns the raster itself.
func (r *Raster) Context() Context { return r }

// Version increases with every drawing operation, letting hosts skip
// re-encoding a frame nobody drew on.
func (r *Raster) Version() uint64 { return r.version }

func (r *Raster) SetFillStyle(c core.Color) { r.fill = c }
func (r *Raster) SetStrokeStyle(c core.Color) { r.stroke = c }
func (r *Raster) SetLineWidth(w float64) { r.lineWidth = w }
func (r *Raster) SetFont(size float64) { r.fontSize = size }
func (r *Raster) SetTextAlign(a Align) { r.align = a }
func (r *Raster) SetTextBaseline(b Baseline) { r.baseline = b }

// FillRect fills an axis-aligned rectangle with the fill style.
func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.SetColor(r.fill.RGBA())
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
	r.version++
}

// StrokeLine strokes one segment with the stroke style and line width.
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64) {
	r.dc.SetColor(r.stroke.RGBA())
	r.dc.SetLineWidth(r.lineWidth)
	r.dc.DrawLine(x0, y0, x1, y1)
	r.dc.Stroke()
	r.version++
}

// FillCircle fills a full arc around (x, y).
func (r *Raster) FillCircle(x, y, radius float64) {
	r.dc.SetColor(r.fill.RGBA())
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
	r.version++
}

// FillText draws text anchored at (x, y) per the current align and baseline.
// Without a usable font face gg's built-in bitmap face is used.
func (r *Raster) FillText(text string, x, y float64) {
	if face, err := r.face(r.fontSize); err == nil {
		r.dc.SetFontFace(face)
	}
	ax, ay := anchors(r.align, r.baseline)
	r.dc.SetColor(r.fill.RGBA())
	r.dc.DrawStringAnchored(text, x, y, ax, ay)
	r.version++
}

func (r *Raster) face(size float64) (font.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	ttf, err := regular()
	if err != nil {
		return nil, fmt.Errorf("canvas: cannot parse font: %w", err)
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size})
	r.faces[size] = f
	return f, nil
}

// Image returns the current pixel buffer.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// Scaled returns a copy of the buffer resized to exactly w×h pixels.
// A zero dimension keeps the aspect ratio.
func (r *Raster) Scaled(w, h int) *image.NRGBA {
	return imaging.Resize(r.dc.Image(), w, h, imaging.Box)
}

// Thumbnail returns a copy that fits inside w×h, preserving aspect ratio.
func (r *Raster) Thumbnail(w, h int) *image.NRGBA {
	return imaging.Fit(r.dc.Image(), w, h, imaging.Lanczos)
}

// EncodePNG writes the buffer as a PNG image.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG writes the buffer, optionally downscaled to width pixels wide,
// to a PNG file.
func (r *Raster) SavePNG(path string, width int) error {
	var img image.Image = r.dc.Image()
	if width > 0 && width < r.Width() {
		img = r.Scaled(width, 0)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("canvas: cannot save %s: %w", path, err)
	}
	return nil
}
