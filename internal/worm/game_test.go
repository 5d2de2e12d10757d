package worm

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-worm/internal/canvas"
	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/host"
)

type testHost struct {
	surface *canvas.Recorder
	frames  *host.FrameQueue
	touches *host.Touches
}

func newTestGame(t *testing.T, mutate func(*config.Settings)) (*Game, testHost) {
	t.Helper()
	s := config.DefaultSettings()
	s.Grid.CellsY = 14
	if mutate != nil {
		mutate(&s)
	}
	h := testHost{
		surface: canvas.NewRecorder(0, 0),
		frames:  host.NewFrameQueue(),
		touches: host.NewTouches(),
	}
	env := host.Env{Surface: h.surface, Frames: h.frames, Input: h.touches}
	rt := core.DefaultConfig()
	rt.Seed = 1
	return New(s, env, rt, nil), h
}

func TestGameSizing(t *testing.T) {
	g, h := newTestGame(t, func(s *config.Settings) { s.Grid.CellsY = 0 })
	cfg := g.Configuration()

	// 375x667 window, 14 cells across: floor(667/375*14) = 24 rows.
	if cfg.NbCellsX != 14 || cfg.NbCellsY != 24 {
		t.Fatalf("cells = %dx%d, expected 14x24", cfg.NbCellsX, cfg.NbCellsY)
	}
	if h.surface.Width() != 560 || h.surface.Height() != 960 {
		t.Errorf("buffer = %dx%d, expected 560x960", h.surface.Width(), h.surface.Height())
	}
	if w, hh := h.surface.DisplaySize(); w != 280 || hh != 480 {
		t.Errorf("display size = %vx%v, expected 280x480", w, hh)
	}
	if cfg.CellWidth != 40 || cfg.CellHeight != 40 {
		t.Errorf("cell = %vx%v, expected 40x40", cfg.CellWidth, cfg.CellHeight)
	}
	if cfg.Speed != 100 || cfg.Level != 0 {
		t.Errorf("speed %d level %d, expected 100 and 0", cfg.Speed, cfg.Level)
	}
}

func TestGameStartSchedulesFrame(t *testing.T) {
	g, h := newTestGame(t, nil)
	if g.State() != StateIdle || h.frames.Pending() != 0 {
		t.Fatal("a new game should be idle with nothing scheduled")
	}

	g.Start()
	if !g.Running() || g.State() != StateRunning {
		t.Fatal("game should be running after Start")
	}
	if h.frames.Pending() != 1 {
		t.Fatalf("pending frames = %d, expected 1", h.frames.Pending())
	}

	g.Start()
	if h.frames.Pending() != 1 {
		t.Error("second Start should not schedule another loop")
	}
}

func TestGameMoveTiming(t *testing.T) {
	g, h := newTestGame(t, nil)
	g.grid.cells = []Cell{{13, 13}}
	g.Start()

	steps := []struct {
		ms    float64
		moves uint64
	}{
		{0, 1},
		{16, 1},
		{99, 1},
		{100, 2},
		{350, 3}, // late frame: one move, the missed ones are dropped
		{400, 3},
		{449, 3},
		{450, 4},
	}
	for _, s := range steps {
		h.frames.Flush(s.ms)
		if g.moves != s.moves {
			t.Fatalf("at %vms moves = %d, expected %d", s.ms, g.moves, s.moves)
		}
	}
	if g.worm.Head() != (Cell{5, 1}) {
		t.Errorf("head = %v, expected (5,1)", g.worm.Head())
	}
}

func TestGameEatApple(t *testing.T) {
	g, h := newTestGame(t, nil)
	g.grid.cells = []Cell{{5, 5}, {10, 10}}
	g.worm.head = Cell{4, 5}
	g.Start()

	h.frames.Flush(0)

	if g.worm.Head() != (Cell{5, 5}) {
		t.Fatalf("head = %v, expected (5,5)", g.worm.Head())
	}
	if g.Score() != 100 {
		t.Errorf("score = %d, expected 100", g.Score())
	}
	if g.grid.IsApple(Cell{5, 5}) {
		t.Error("eaten apple should be gone")
	}
	if g.worm.Size() != 6 {
		t.Errorf("size = %d, expected 6", g.worm.Size())
	}
	if g.Level() != 0 {
		t.Errorf("level = %d, expected 0 while apples remain", g.Level())
	}
}

func TestGameCheckState(t *testing.T) {
	tests := []struct {
		name     string
		head     Cell
		tail     []Cell
		apples   []Cell
		expected Outcome
	}{
		{"empty cell", Cell{3, 3}, nil, nil, OutcomeNone},
		{"apple", Cell{5, 5}, nil, []Cell{{5, 5}}, OutcomeApple},
		{"left edge", Cell{-1, 3}, nil, nil, OutcomeDead},
		{"bottom edge", Cell{3, 14}, nil, nil, OutcomeDead},
		{"tail", Cell{2, 2}, []Cell{{2, 2}, {2, 3}}, nil, OutcomeDead},
		{"apple on tail", Cell{2, 2}, []Cell{{2, 2}}, []Cell{{2, 2}}, OutcomeDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, nil)
			g.worm.head = tt.head
			g.worm.tail = tt.tail
			g.grid.cells = tt.apples
			if got := g.checkState(); got != tt.expected {
				t.Errorf("checkState() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestGameDiesOutsideGrid(t *testing.T) {
	g, h := newTestGame(t, nil)
	g.grid.cells = []Cell{{13, 13}}
	g.worm.head = Cell{0, 3}
	g.worm.directions = []Direction{DirLeft}
	g.Start()

	h.frames.Flush(0)

	if g.worm.Head() != (Cell{-1, 3}) {
		t.Fatalf("head = %v, expected (-1,3)", g.worm.Head())
	}
	if g.Running() || g.State() != StateDead {
		t.Fatalf("state = %v running = %v, expected dead", g.State(), g.Running())
	}
	if !strings.HasPrefix(g.Message(), "You died.") {
		t.Errorf("message = %q", g.Message())
	}
	if n := len(h.surface.Ops()); n != 0 {
		t.Errorf("the fatal frame should not paint, got %d ops", n)
	}

	// The callback armed before dying runs once more and stops rescheduling.
	h.frames.Flush(200)
	h.frames.Flush(400)
	if g.moves != 1 {
		t.Errorf("moves = %d, expected no moves after death", g.moves)
	}
	if h.frames.Pending() != 0 {
		t.Errorf("pending frames = %d, expected 0", h.frames.Pending())
	}
}

func TestGameLevelUp(t *testing.T) {
	g, h := newTestGame(t, nil)
	p := testPalette(t)
	g.grid.cells = []Cell{{5, 5}}
	g.worm.head = Cell{4, 5}
	g.Start()

	h.frames.Flush(0)

	cfg := g.Configuration()
	if cfg.Level != 1 {
		t.Fatalf("level = %d, expected 1", cfg.Level)
	}
	if cfg.Speed != 93 {
		t.Errorf("speed = %d, expected 93", cfg.Speed)
	}
	if cfg.Color != p.Levels[1] {
		t.Errorf("background = %v, expected %v", cfg.Color, p.Levels[1])
	}
	if g.Score() != 1100 {
		t.Errorf("score = %d, expected 1100", g.Score())
	}
	if g.grid.IsDone() {
		t.Error("grid should be reseeded")
	}
	if n := len(g.grid.Apples()); n != 10 {
		t.Errorf("apples = %d, expected 10", n)
	}

	// The next move waits for the previous level's interval.
	h.frames.Flush(99)
	if g.moves != 1 {
		t.Errorf("moves at 99ms = %d, expected 1", g.moves)
	}
}

func TestGameWin(t *testing.T) {
	g, h := newTestGame(t, func(s *config.Settings) { s.Play.MaxLevel = 1 })
	g.grid.cells = []Cell{{5, 5}}
	g.worm.head = Cell{4, 5}
	g.Start()

	h.frames.Flush(0)

	if g.State() != StateWon || g.Running() {
		t.Fatalf("state = %v, expected won", g.State())
	}
	if g.Score() != 1100 {
		t.Errorf("score = %d, expected 1100", g.Score())
	}
	if !strings.Contains(g.Message(), "Congrats") || !strings.Contains(g.Message(), "1100") {
		t.Errorf("message = %q", g.Message())
	}
	if g.Level() != 1 {
		t.Errorf("level = %d, expected 1", g.Level())
	}
}

func TestGamePaint(t *testing.T) {
	g, h := newTestGame(t, nil)
	p := testPalette(t)
	g.grid.cells = []Cell{{13, 13}}
	g.Start()

	h.frames.Flush(0)

	ops := h.surface.Ops()
	if len(ops) == 0 {
		t.Fatal("nothing painted")
	}
	bg := ops[0]
	if bg.Kind != canvas.OpFillRect || bg.W != 560 || bg.H != 560 || bg.Color != p.Levels[0] {
		t.Errorf("background op = %+v", bg)
	}

	texts := h.surface.Filter(canvas.OpFillText)
	if len(texts) != 1 {
		t.Fatalf("texts = %d, expected 1", len(texts))
	}
	score := texts[0]
	if score.Text != "0" || score.FontSize != 70 || score.X != 20 || score.Y != 20 {
		t.Errorf("score op = %+v", score)
	}
	if score.Align != canvas.AlignLeft || score.Baseline != canvas.BaselineTop || score.Color != p.Text {
		t.Errorf("score style = %+v", score)
	}
	if ops[len(ops)-1].Kind != canvas.OpFillText {
		t.Error("score should be painted last")
	}
}

func TestGameSwipe(t *testing.T) {
	tests := []struct {
		name     string
		from, to [2]float64
		expected []Direction
	}{
		{"down", [2]float64{100, 100}, [2]float64{110, 230}, []Direction{DirRight, DirDown}},
		{"up", [2]float64{100, 300}, [2]float64{90, 150}, []Direction{DirRight, DirUp}},
		{"too short", [2]float64{100, 100}, [2]float64{150, 160}, []Direction{DirRight}},
		{"left rejected", [2]float64{300, 100}, [2]float64{100, 100}, []Direction{DirRight}},
		{"diagonal favours horizontal", [2]float64{300, 100}, [2]float64{190, 400}, []Direction{DirRight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, h := newTestGame(t, nil)
			h.touches.Start(core.NewTouchEvent(0, tt.from[0], tt.from[1]))
			h.touches.End(core.NewTouchEvent(0, tt.to[0], tt.to[1]))

			got := g.worm.Pending()
			if len(got) != len(tt.expected) {
				t.Fatalf("pending = %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("pending[%d] = %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestGameTouchEndWithoutStart(t *testing.T) {
	g, h := newTestGame(t, nil)
	h.touches.End(core.NewTouchEvent(0, 500, 500))
	if got := g.worm.Pending(); len(got) != 1 {
		t.Errorf("pending = %v, expected untouched queue", got)
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		dx, dy float64
		dir    Direction
		ok     bool
	}{
		{100, 0, DirRight, true},
		{-100, 0, DirLeft, true},
		{0, 100, DirDown, true},
		{0, -100, DirUp, true},
		{99, 99, 0, false},
		{-120, 500, DirLeft, true},
		{0, 0, 0, false},
	}
	for _, tt := range tests {
		dir, ok := SwipeDirection(tt.dx, tt.dy, 100)
		if ok != tt.ok || (ok && dir != tt.dir) {
			t.Errorf("SwipeDirection(%v, %v) = %v, %v; expected %v, %v", tt.dx, tt.dy, dir, ok, tt.dir, tt.ok)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, h := newTestGame(t, nil)
		g.Start()
		for i := range 40 {
			if i == 5 {
				g.worm.SetDirection(DirDown)
			}
			if i == 12 {
				g.worm.SetDirection(DirRight)
			}
			h.frames.Flush(float64(i * 100))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}
