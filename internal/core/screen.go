package core

import (
	"image"
	"strings"
)

// HalfBlock shows two vertically stacked pixels in one terminal cell: the
// foreground paints the upper pixel, the background the lower one.
const HalfBlock = '▀'

// Cell is one terminal character with its colours.
// A zero FG or BG means the terminal default.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

var blank = Cell{Rune: ' '}

// Screen is a grid of terminal cells. Hosts compose the scaled canvas and
// their overlays on it and leave the escape codes to the painter.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// Resize reallocates the screen. The content is blanked.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		s.Clear()
		return
	}
	s.width, s.height = width, height
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for _, row := range s.cells {
		for x := range row {
			row[x] = blank
		}
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune, keeping the cell's colours. Positions off the screen
// are ignored.
func (s *Screen) Set(x, y int, r rune) {
	if s.inside(x, y) {
		s.cells[y][x].Rune = r
	}
}

// SetCell replaces a cell. Positions off the screen are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.inside(x, y) {
		s.cells[y][x] = c
	}
}

// GetCell returns the cell at (x, y), or a blank one off the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// Row returns the runes of row y.
func (s *Screen) Row(y int) string {
	if !s.inside(0, y) {
		return ""
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// DrawText writes text from (x, y) keeping the existing colours.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
	}
}

// DrawStyledText writes text from (x, y) in fg on bg.
func (s *Screen) DrawStyledText(x, y int, text string, fg, bg Color) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, Cell{Rune: r, FG: fg, BG: bg})
	}
}

// DrawRect fills r with c.
func (s *Screen) DrawRect(r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, c)
		}
	}
}

// DrawBox outlines r with box-drawing runes.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// BlitHalfBlocks copies img onto the screen with its top-left pixel at cell
// (x, y). Every cell takes two image rows, so a w×h image covers w×⌈h/2⌉
// cells. An odd last row is paired with the terminal background.
func (s *Screen) BlitHalfBlocks(img image.Image, x, y int) {
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		row := y + (py-b.Min.Y)/2
		for px := b.Min.X; px < b.Max.X; px++ {
			c := Cell{Rune: HalfBlock, FG: FromColor(img.At(px, py))}
			if py+1 < b.Max.Y {
				c.BG = FromColor(img.At(px, py+1))
			}
			s.SetCell(x+(px-b.Min.X), row, c)
		}
	}
}
