package canvas

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-worm/internal/core"
)

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(40, 20)
	ctx := r.Context()

	ctx.SetFillStyle(core.ColorRed)
	ctx.FillRect(10, 5, 10, 10)

	if got := core.FromColor(r.Image().At(15, 10)); got != core.ColorRed {
		t.Errorf("pixel inside rect = %+v, expected red", got)
	}
	if got := core.FromColor(r.Image().At(2, 2)); got == core.ColorRed {
		t.Error("pixel outside rect should not be red")
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(20, 20)
	r.SetFillStyle(core.ColorWhite)
	r.FillCircle(10, 10, 4)

	if got := core.FromColor(r.Image().At(10, 10)); got != core.ColorWhite {
		t.Errorf("circle centre = %+v, expected white", got)
	}
	if got := core.FromColor(r.Image().At(1, 1)); got == core.ColorWhite {
		t.Error("corner should be outside the circle")
	}
}

func TestRasterStrokeLine(t *testing.T) {
	r := NewRaster(20, 20)
	r.SetStrokeStyle(core.ColorBlack)
	r.SetLineWidth(4)
	r.StrokeLine(10, 0, 10, 20)

	if got := core.FromColor(r.Image().At(10, 10)); got != core.ColorBlack {
		t.Errorf("pixel on line = %+v, expected black", got)
	}
}

func TestRasterFillTextMarksPixels(t *testing.T) {
	r := NewRaster(120, 60)
	r.SetFillStyle(core.ColorWhite)
	r.FillRect(0, 0, 120, 60)

	r.SetFillStyle(core.ColorBlack)
	r.SetFont(30)
	r.SetTextAlign(AlignLeft)
	r.SetTextBaseline(BaselineTop)
	r.FillText("100", 4, 4)

	dark := 0
	img := r.Image()
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if c := core.FromColor(img.At(x, y)); c.R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("FillText drew nothing")
	}
}

func TestRasterVersion(t *testing.T) {
	r := NewRaster(10, 10)
	v := r.Version()
	r.FillRect(0, 0, 1, 1)
	if r.Version() == v {
		t.Error("Version() should change after drawing")
	}
}

func TestRasterSizes(t *testing.T) {
	r := NewRaster(560, 1040)
	r.SetDisplaySize(280, 520)

	if r.Width() != 560 || r.Height() != 1040 {
		t.Errorf("buffer = %dx%d, expected 560x1040", r.Width(), r.Height())
	}
	if w, h := r.DisplaySize(); w != 280 || h != 520 {
		t.Errorf("display = %vx%v, expected 280x520", w, h)
	}

	if img := r.Scaled(80, 44); img.Bounds().Dx() != 80 || img.Bounds().Dy() != 44 {
		t.Errorf("Scaled() = %v, expected 80x44", img.Bounds())
	}
	if img := r.Thumbnail(100, 100); img.Bounds().Dy() != 100 || img.Bounds().Dx() > 100 {
		t.Errorf("Thumbnail() = %v, expected to fit 100x100", img.Bounds())
	}

	r.Resize(100, 50)
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("after Resize buffer = %dx%d, expected 100x50", r.Width(), r.Height())
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(32, 16)
	r.SetFillStyle(core.ColorRed)
	r.FillRect(0, 0, 32, 16)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("decoded bounds = %v, expected 32x16", img.Bounds())
	}
}

func TestRasterSavePNG(t *testing.T) {
	r := NewRaster(64, 32)
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := r.SavePNG(path, 32); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(100, 50)
	ctx := rec.Context()

	ctx.SetFillStyle(core.ColorRed)
	ctx.FillRect(1, 2, 3, 4)
	ctx.SetStrokeStyle(core.ColorBlack)
	ctx.SetLineWidth(2)
	ctx.StrokeLine(0, 0, 0, 50)
	ctx.SetFillStyle(core.ColorWhite)
	ctx.FillCircle(5, 5, 1)
	ctx.SetFont(70)
	ctx.FillText("42", 20, 20)

	ops := rec.Ops()
	if len(ops) != 4 {
		t.Fatalf("recorded %d ops, expected 4", len(ops))
	}
	if ops[0].Kind != OpFillRect || ops[0].Color != core.ColorRed || ops[0].W != 3 {
		t.Errorf("rect op = %+v", ops[0])
	}
	if ops[1].LineWidth != 2 || ops[1].Y2 != 50 {
		t.Errorf("line op = %+v", ops[1])
	}
	if ops[2].Color != core.ColorWhite || ops[2].R != 1 {
		t.Errorf("circle op = %+v", ops[2])
	}
	if ops[3].Text != "42" || ops[3].FontSize != 70 {
		t.Errorf("text op = %+v", ops[3])
	}

	if n := len(rec.Filter(OpFillCircle)); n != 1 {
		t.Errorf("Filter(OpFillCircle) = %d ops, expected 1", n)
	}

	rec.Reset()
	if len(rec.Ops()) != 0 {
		t.Error("Reset() should clear ops")
	}
}

func TestAnchors(t *testing.T) {
	tests := []struct {
		a      Align
		b      Baseline
		ax, ay float64
	}{
		{AlignLeft, BaselineAlphabetic, 0, 0},
		{AlignLeft, BaselineTop, 0, 1},
		{AlignCenter, BaselineMiddle, 0.5, 0.5},
		{AlignRight, BaselineTop, 1, 1},
	}
	for _, tc := range tests {
		ax, ay := anchors(tc.a, tc.b)
		if ax != tc.ax || ay != tc.ay {
			t.Errorf("anchors(%v, %v) = %v, %v, expected %v, %v", tc.a, tc.b, ax, ay, tc.ax, tc.ay)
		}
	}
}
