package worm

import (
	"math/rand"

	"github.com/vovakirdan/tui-worm/internal/canvas"
	"github.com/vovakirdan/tui-worm/internal/config"
)

// Grid owns the apples and draws the playfield lines.
type Grid struct {
	cfg     ConfigReader
	apples  int // apples per level multiplier
	palette config.Palette
	rng     *rand.Rand

	cells []Cell
}

// NewGrid creates a grid and seeds the first level's apples.
func NewGrid(cfg ConfigReader, apples int, palette config.Palette, rng *rand.Rand) *Grid {
	g := &Grid{
		cfg:     cfg,
		apples:  apples,
		palette: palette,
		rng:     rng,
	}
	g.Seed()
	return g
}

// Seed appends apples*(level+1) apples at uniformly random cells. Existing
// apples are kept, so callers reseed only once the grid is empty. Apples may
// share a cell or land on the worm.
func (g *Grid) Seed() {
	cfg := g.cfg.Configuration()
	n := g.apples * (cfg.Level + 1)
	for range n {
		g.cells = append(g.cells, Cell{
			X: g.rng.Intn(cfg.NbCellsX),
			Y: g.rng.Intn(cfg.NbCellsY),
		})
	}
}

// IsApple reports whether an apple lies on c.
func (g *Grid) IsApple(c Cell) bool {
	for _, a := range g.cells {
		if a == c {
			return true
		}
	}
	return false
}

// Eat removes every apple on c.
func (g *Grid) Eat(c Cell) {
	kept := g.cells[:0]
	for _, a := range g.cells {
		if a != c {
			kept = append(kept, a)
		}
	}
	g.cells = kept
}

// IsDone reports whether the level's apples are all eaten.
func (g *Grid) IsDone() bool {
	return len(g.cells) == 0
}

// Apples returns a copy of the apple cells.
func (g *Grid) Apples() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Draw strokes a line on every cell boundary, then fills the apples.
func (g *Grid) Draw(_ float64, ctx canvas.Context) {
	cfg := g.cfg.Configuration()

	ctx.SetStrokeStyle(g.palette.Grid)
	ctx.SetLineWidth(1 * cfg.Scale)
	for i := 0; i <= cfg.NbCellsX; i++ {
		x := float64(i) * cfg.CellWidth
		ctx.StrokeLine(x, 0, x, cfg.Height)
	}
	for i := 0; i <= cfg.NbCellsY; i++ {
		y := float64(i) * cfg.CellHeight
		ctx.StrokeLine(0, y, cfg.Width, y)
	}

	ctx.SetFillStyle(g.palette.Apple)
	for _, a := range g.cells {
		ctx.FillRect(cfg.CellWidth*float64(a.X), cfg.CellHeight*float64(a.Y), cfg.CellWidth, cfg.CellHeight)
	}
}
