package core

import (
	"image"
	"image/color"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := range 3 {
		if got := s.Row(y); got != "      " {
			t.Errorf("Row(%d) = %q, expected blanks", y, got)
		}
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(2, 0, "abcd")
	s.DrawText(-1, 1, "xyz")
	s.Set(9, 9, 'q')

	if got := s.Row(0); got != "  ab" {
		t.Errorf("Row(0) = %q, expected %q", got, "  ab")
	}
	if got := s.Row(1); got != "yz  " {
		t.Errorf("Row(1) = %q, expected %q", got, "yz  ")
	}
	if c := s.GetCell(-1, 0); c != blank {
		t.Errorf("GetCell off screen = %+v, expected blank", c)
	}
	if s.Row(5) != "" {
		t.Error("Row off screen should be empty")
	}
}

func TestScreenSetKeepsColours(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawStyledText(1, 0, "a", ColorRed, ColorWhite)
	s.DrawText(1, 0, "b")

	c := s.GetCell(1, 0)
	if c.Rune != 'b' || c.FG != ColorRed || c.BG != ColorWhite {
		t.Errorf("GetCell(1, 0) = %+v, expected 'b' on red/white", c)
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(10, 5)
	box := NewRect(0, 0, 10, 5).Centered(6, 3)
	s.DrawRect(box, Cell{Rune: ' ', BG: ColorWhite})
	s.DrawBox(box)

	expected := []string{
		"          ",
		"  ┌────┐  ",
		"  │    │  ",
		"  └────┘  ",
		"          ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(3, 2).BG != ColorWhite {
		t.Error("box interior should keep the fill background")
	}
	if !s.GetCell(0, 0).BG.IsZero() {
		t.Error("cells outside the box should keep the default background")
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "worm")

	s.Resize(4, 2)
	if got := s.Row(0); got != "    " {
		t.Errorf("Row(0) after same-size resize = %q, expected blanks", got)
	}

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 || s.Row(2) != "  " {
		t.Errorf("after resize: %dx%d row 2 %q", s.Width(), s.Height(), s.Row(2))
	}
}

func TestScreenBlitHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 0, 255})
	img.Set(1, 2, color.RGBA{255, 255, 255, 255})

	s := NewScreen(4, 4)
	s.BlitHalfBlocks(img, 1, 1)

	top := s.GetCell(1, 1)
	if top.Rune != HalfBlock || top.FG != ColorRed || top.BG != ColorBlack {
		t.Errorf("cell (1,1) = %+v, expected red over black half block", top)
	}

	// The odd last row has no lower pixel.
	last := s.GetCell(2, 2)
	if last.FG != ColorWhite || !last.BG.IsZero() {
		t.Errorf("cell (2,2) = %+v, expected white over default", last)
	}

	if s.GetCell(0, 0) != blank || s.GetCell(3, 1) != blank {
		t.Error("cells outside the image should stay blank")
	}
}
