package worm

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-worm/internal/canvas"
)

func newTestGrid(t *testing.T, cfg ConfigReader, seed int64) *Grid {
	t.Helper()
	return NewGrid(cfg, 5, testPalette(t), rand.New(rand.NewSource(seed)))
}

func TestGridSeedCount(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{0, 5},
		{1, 10},
		{4, 25},
	}

	for _, tt := range tests {
		cfg := testConfig()
		cfg.Level = tt.level
		g := newTestGrid(t, cfg, 1)
		if got := len(g.Apples()); got != tt.expected {
			t.Errorf("level %d: apples = %d, expected %d", tt.level, got, tt.expected)
		}
	}
}

func TestGridSeedInBounds(t *testing.T) {
	cfg := testConfig()
	cfg.NbCellsX, cfg.NbCellsY = 3, 2
	cfg.Level = 9
	g := newTestGrid(t, cfg, 42)

	for _, a := range g.Apples() {
		if !Configuration(cfg).Contains(a) {
			t.Errorf("apple %v outside 3x2 grid", a)
		}
	}
}

func TestGridSeedAppends(t *testing.T) {
	g := newTestGrid(t, testConfig(), 7)
	g.Seed()
	if got := len(g.Apples()); got != 10 {
		t.Errorf("apples after second seed = %d, expected 10", got)
	}
}

func TestGridSeedDeterministic(t *testing.T) {
	a := newTestGrid(t, testConfig(), 99).Apples()
	b := newTestGrid(t, testConfig(), 99).Apples()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("apple %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGridEat(t *testing.T) {
	g := newTestGrid(t, testConfig(), 1)
	g.cells = []Cell{{5, 5}, {2, 3}, {5, 5}}

	if !g.IsApple(Cell{5, 5}) {
		t.Fatal("(5,5) should be an apple")
	}

	g.Eat(Cell{5, 5})
	if g.IsApple(Cell{5, 5}) {
		t.Error("every apple on (5,5) should be eaten")
	}
	if got := g.Apples(); len(got) != 1 || got[0] != (Cell{2, 3}) {
		t.Errorf("apples = %v, expected [(2,3)]", got)
	}

	// Eating an empty cell twice changes nothing.
	g.Eat(Cell{5, 5})
	g.Eat(Cell{5, 5})
	if got := g.Apples(); len(got) != 1 {
		t.Errorf("apples after idle eats = %v", got)
	}

	g.Eat(Cell{2, 3})
	if !g.IsDone() {
		t.Error("grid should be done once every apple is eaten")
	}
}

func TestGridDraw(t *testing.T) {
	p := testPalette(t)
	g := newTestGrid(t, testConfig(), 1)
	g.cells = []Cell{{3, 4}}

	rec := canvas.NewRecorder(560, 560)
	g.Draw(0, rec)

	lines := rec.Filter(canvas.OpStrokeLine)
	if len(lines) != 30 {
		t.Fatalf("lines = %d, expected 15 vertical + 15 horizontal", len(lines))
	}
	last := lines[14]
	if last.X != 560 || last.Y != 0 || last.X2 != 560 || last.Y2 != 560 {
		t.Errorf("last vertical line = %+v", last)
	}
	if last.LineWidth != 2 || last.Color != p.Grid {
		t.Errorf("line style = width %v colour %v", last.LineWidth, last.Color)
	}

	rects := rec.Filter(canvas.OpFillRect)
	if len(rects) != 1 {
		t.Fatalf("rects = %d, expected 1 apple", len(rects))
	}
	if r := rects[0]; r.X != 120 || r.Y != 160 || r.Color != p.Apple {
		t.Errorf("apple rect = %+v", r)
	}
}
