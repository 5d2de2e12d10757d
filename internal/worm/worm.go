package worm

import (
	"github.com/vovakirdan/tui-worm/internal/canvas"
	"github.com/vovakirdan/tui-worm/internal/config"
)

// Starting state of every worm.
const (
	InitialSize      = 3
	InitialDirection = DirRight
)

// InitialPosition is where the head starts.
var InitialPosition = Cell{X: 1, Y: 1}

// eyeLayouts holds the eye positions per direction, in thirds of a cell.
var eyeLayouts = [...][2][2]float64{
	DirUp:    {{1, 1}, {2, 1}},
	DirRight: {{2, 1}, {2, 2}},
	DirDown:  {{1, 2}, {2, 2}},
	DirLeft:  {{1, 1}, {1, 2}},
}

// Worm is the player-controlled entity.
//
// Invariants: len(tail) <= size after every Move, size >= 0, and directions
// is never empty.
type Worm struct {
	cfg     ConfigReader
	palette config.Palette

	head       Cell
	tail       []Cell      // oldest first
	directions []Direction // pending turns; [0] is applied next
	size       int
}

// NewWorm creates a worm at the initial position heading right.
func NewWorm(cfg ConfigReader, palette config.Palette) *Worm {
	return &Worm{
		cfg:        cfg,
		palette:    palette,
		head:       InitialPosition,
		directions: []Direction{InitialDirection},
		size:       InitialSize,
	}
}

// SetDirection queues a turn. A turn equal or opposite to the last queued
// direction is dropped, so every queued turn is checked against the one
// before it rather than against the direction currently applied.
func (w *Worm) SetDirection(d Direction) {
	last := w.directions[len(w.directions)-1]
	if last.Conflicts(d) {
		return
	}
	w.directions = append(w.directions, d)
}

// Move advances the head one cell. The previous head joins the tail and the
// oldest tail cell is dropped once the tail exceeds the worm size.
// Collisions are the caller's business.
func (w *Worm) Move() {
	w.tail = append(w.tail, w.head)
	w.head = w.next()
	if excess := len(w.tail) - w.size; excess > 0 {
		w.tail = w.tail[excess:]
	}
}

// next consumes the oldest pending direction, keeping the last one, and
// returns the cell it leads to.
func (w *Worm) next() Cell {
	d := w.directions[0]
	if len(w.directions) > 1 {
		w.directions = w.directions[1:]
	}
	return w.head.Add(d.Delta())
}

// Grow lengthens the target size by n cells.
func (w *Worm) Grow(n int) {
	w.size += n
}

// Shrink shortens the target size by n cells, never below zero.
// The tail itself is trimmed on the following moves.
func (w *Worm) Shrink(n int) {
	w.size = max(w.size-n, 0)
}

// Head returns the leading cell.
func (w *Worm) Head() Cell {
	return w.head
}

// Tail returns a copy of the body cells, oldest first.
func (w *Worm) Tail() []Cell {
	return append([]Cell(nil), w.tail...)
}

// Size returns the target tail length.
func (w *Worm) Size() int {
	return w.size
}

// Direction returns the direction the next move takes.
func (w *Worm) Direction() Direction {
	return w.directions[0]
}

// Pending returns a copy of the direction queue.
func (w *Worm) Pending() []Direction {
	return append([]Direction(nil), w.directions...)
}

// IsWorm reports whether c is on the tail. The head is not checked.
func (w *Worm) IsWorm(c Cell) bool {
	for _, t := range w.tail {
		if t == c {
			return true
		}
	}
	return false
}

// Draw renders the head with its eyes and then the tail.
func (w *Worm) Draw(_ float64, ctx canvas.Context) {
	cfg := w.cfg.Configuration()
	cw, ch := cfg.CellWidth, cfg.CellHeight

	x := cw * float64(w.head.X)
	y := ch * float64(w.head.Y)
	ctx.SetFillStyle(w.palette.Head)
	ctx.FillRect(x, y, cw, ch)

	radius := min(cw, ch) / 10
	ctx.SetFillStyle(w.palette.Eyes)
	for _, eye := range eyeLayouts[w.directions[0]] {
		ctx.FillCircle(x+eye[0]*cw/3, y+eye[1]*ch/3, radius)
	}

	ctx.SetFillStyle(w.palette.Tail)
	for _, c := range w.tail {
		ctx.FillRect(cw*float64(c.X), ch*float64(c.Y), cw, ch)
	}
}
