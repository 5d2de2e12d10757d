package worm

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worm/internal/canvas"
	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/host"
)

// State is the session state. Won and Dead are terminal.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateWon
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Outcome classifies the cell the head just moved onto.
type Outcome int

const (
	OutcomeDead  Outcome = -1 // left the grid or hit the tail
	OutcomeNone  Outcome = 0
	OutcomeApple Outcome = 1
)

// Game is one worm session: it owns the configuration, the score, the worm
// and the grid, and advances them from host frame callbacks.
type Game struct {
	settings config.Settings
	palette  config.Palette
	env      host.Env
	logger   *log.Logger

	configuration Configuration
	worm          *Worm
	grid          *Grid

	score    int
	state    State
	running  bool
	nextMove float64
	moves    uint64
	message  string

	touch    core.TouchPoint
	touching bool
}

// New creates a session. The surface in env is sized here: the grid is
// settings.Grid.CellsX cells wide and, unless CellsY is set, as many cells
// tall as the window aspect ratio allows. A nil logger discards output.
func New(settings config.Settings, env host.Env, rt core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette, err := settings.Colors.Palette()
	if err != nil {
		logger.Warn("invalid colors, using defaults", "error", err)
		palette, _ = config.DefaultSettings().Colors.Palette()
	}

	g := &Game{
		settings: settings,
		palette:  palette,
		env:      env,
		logger:   logger,
	}
	g.configure(rt)

	rng := rand.New(rand.NewSource(rt.Seed))
	g.worm = NewWorm(g, palette)
	g.grid = NewGrid(g, settings.Play.Apples, palette, rng)
	g.bindInput()
	return g
}

// configure sizes the surface and fills in the initial configuration.
func (g *Game) configure(rt core.RuntimeConfig) {
	grid := g.settings.Grid
	cellsX := grid.CellsX
	cellsY := grid.CellsY
	if cellsY <= 0 {
		cellsY = cellsX
		if rt.WindowW > 0 && rt.WindowH > 0 {
			cellsY = max(1, int(math.Floor(rt.WindowH/rt.WindowW*float64(cellsX))))
		}
	}

	// Page size, then a buffer scaled up for crisp lines.
	displayW := float64(cellsX * grid.CellSize)
	displayH := float64(cellsY * grid.CellSize)
	surface := g.env.Surface
	surface.SetDisplaySize(displayW, displayH)
	surface.Resize(int(displayW*grid.Scale), int(displayH*grid.Scale))

	width := float64(surface.Width())
	height := float64(surface.Height())
	g.configuration = Configuration{
		Level:      0,
		Speed:      g.settings.Play.Speed,
		NbCellsX:   cellsX,
		NbCellsY:   cellsY,
		Width:      width,
		Height:     height,
		CellWidth:  width / float64(cellsX),
		CellHeight: height / float64(cellsY),
		Scale:      grid.Scale,
		Color:      g.palette.LevelColor(0),
	}
}

// Configuration returns a copy of the session configuration.
func (g *Game) Configuration() Configuration {
	return g.configuration
}

// Start begins the session and schedules the first frame. The first move
// happens on that frame. Start does nothing unless the session is idle.
func (g *Game) Start() {
	if g.state != StateIdle {
		return
	}
	g.nextMove = 0
	g.running = true
	g.state = StateRunning
	g.env.Frames.RequestFrame(g.loop)
}

// stop ends the session for good.
func (g *Game) stop(final State) {
	g.running = false
	g.state = final
}

// loop is the frame callback. It re-arms itself first so a session keeps
// polling every frame, and moves at most once per frame: when frames arrive
// late, missed intervals are dropped rather than caught up.
func (g *Game) loop(ms float64) {
	if !g.running {
		return
	}
	g.env.Frames.RequestFrame(g.loop)

	if ms < g.nextMove {
		return
	}
	g.nextMove = ms + float64(g.configuration.Speed)

	g.worm.Move()
	g.moves++

	switch g.checkState() {
	case OutcomeDead:
		g.die()
		return
	case OutcomeApple:
		g.worm.Grow(g.settings.Play.Growth)
		g.score += g.settings.Play.ApplePoints
		g.grid.Eat(g.worm.Head())
		if g.grid.IsDone() {
			g.levelUp()
		}
	}
	g.paint(ms)
}

// checkState classifies the head's new cell.
func (g *Game) checkState() Outcome {
	head := g.worm.Head()
	if !g.configuration.Contains(head) || g.worm.IsWorm(head) {
		return OutcomeDead
	}
	if g.grid.IsApple(head) {
		return OutcomeApple
	}
	return OutcomeNone
}

// levelUp awards the level bonus and either starts the next, faster level
// or ends the session as won.
func (g *Game) levelUp() {
	g.score += g.settings.Play.LevelPoints
	g.configuration.Level++
	if g.configuration.Level >= g.settings.Play.MaxLevel {
		g.win()
		return
	}
	g.configuration.Speed -= g.settings.Play.SpeedStep
	g.configuration.Color = g.palette.LevelColor(g.configuration.Level)
	g.grid.Seed()
	g.logger.Debug("level up",
		"level", g.configuration.Level+1,
		"speed", g.configuration.Speed,
		"score", g.score,
	)
}

func (g *Game) win() {
	g.message = fmt.Sprintf("Congrats you beat the game!\n\nFinal Score: %d", g.score)
	g.logger.Info("Congrats you beat the game!", "final_score", g.score)
	g.stop(StateWon)
}

func (g *Game) die() {
	g.message = fmt.Sprintf("You died.\n\nFinal Score: %d", g.score)
	g.logger.Info("You died.", "final_score", g.score, "level", g.configuration.Level+1)
	g.stop(StateDead)
}

// paint redraws the whole frame.
func (g *Game) paint(ms float64) {
	cfg := g.configuration
	ctx := g.env.Surface.Context()

	// background
	ctx.SetFillStyle(cfg.Color)
	ctx.FillRect(0, 0, cfg.Width, cfg.Height)

	g.grid.Draw(ms, ctx)
	g.worm.Draw(ms, ctx)

	// score
	ctx.SetFont(35 * cfg.Scale)
	ctx.SetTextAlign(canvas.AlignLeft)
	ctx.SetTextBaseline(canvas.BaselineTop)
	ctx.SetFillStyle(g.palette.Text)
	ctx.FillText(strconv.Itoa(g.score), 10*cfg.Scale, 10*cfg.Scale)
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the 0-indexed current level.
func (g *Game) Level() int {
	return g.configuration.Level
}

// State returns the session state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether frames still advance the session.
func (g *Game) Running() bool {
	return g.running
}

// Message returns the final message once the session has ended.
func (g *Game) Message() string {
	return g.message
}

// Worm returns the session's worm.
func (g *Game) Worm() *Worm {
	return g.worm
}

// Grid returns the session's grid.
func (g *Game) Grid() *Grid {
	return g.grid
}
