package worm

// Snapshot is a plain view of a session for status reports and
// determinism checks.
type Snapshot struct {
	State   string `json:"state"`
	Score   int    `json:"score"`
	Level   int    `json:"level"` // 1-indexed for display
	Speed   int    `json:"speed"`
	Moves   uint64 `json:"moves"`
	HeadX   int    `json:"head_x"`
	HeadY   int    `json:"head_y"`
	Dir     string `json:"dir"`
	Size    int    `json:"size"`
	TailLen int    `json:"tail_len"`
	Apples  int    `json:"apples"`
	CellsX  int    `json:"cells_x"`
	CellsY  int    `json:"cells_y"`
	Message string `json:"message,omitempty"`
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	head := g.worm.Head()
	return Snapshot{
		State:   g.state.String(),
		Score:   g.score,
		Level:   g.configuration.Level + 1,
		Speed:   g.configuration.Speed,
		Moves:   g.moves,
		HeadX:   head.X,
		HeadY:   head.Y,
		Dir:     g.worm.Direction().String(),
		Size:    g.worm.Size(),
		TailLen: len(g.worm.tail),
		Apples:  len(g.grid.cells),
		CellsX:  g.configuration.NbCellsX,
		CellsY:  g.configuration.NbCellsY,
		Message: g.message,
	}
}
