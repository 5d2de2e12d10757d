package worm

import "github.com/vovakirdan/tui-worm/internal/core"

// Configuration is the mutable per-session state shared with the worm and
// the grid. The Game owns it; the others read copies.
type Configuration struct {
	Level      int        // 0-indexed current level
	Speed      int        // ms between moves
	NbCellsX   int        // grid columns
	NbCellsY   int        // grid rows
	Width      float64    // buffer width in pixels
	Height     float64    // buffer height in pixels
	CellWidth  float64    // buffer pixels per cell, horizontally
	CellHeight float64    // buffer pixels per cell, vertically
	Scale      float64    // buffer pixels per page pixel
	Color      core.Color // level background
}

// ConfigReader gives read access to the session configuration.
type ConfigReader interface {
	Configuration() Configuration
}

// Contains reports whether c lies on the grid.
func (c Configuration) Contains(cell Cell) bool {
	return cell.X >= 0 && cell.X < c.NbCellsX && cell.Y >= 0 && cell.Y < c.NbCellsY
}
