package tui

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worm/internal/canvas"
	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/host"
	"github.com/vovakirdan/tui-worm/internal/worm"
)

// Options configures a terminal host.
type Options struct {
	Settings config.Settings
	Seed     int64 // 0 picks a time based seed for every session
	FPS      int
	Logger   *log.Logger

	// ScreenshotDir defaults to ~/.worm/screenshots.
	ScreenshotDir string

	// Initial terminal size. Zero waits for the first resize message.
	Width, Height int

	// Renderer carries the colour profile of the output; nil uses stdout's.
	Renderer *lipgloss.Renderer
}

// SettingsMsg delivers reloaded settings. They apply to the next session.
type SettingsMsg struct {
	Settings config.Settings
}

// session is one game with the host plumbing it draws and listens through.
type session struct {
	settings config.Settings
	game     *worm.Game
	raster   *canvas.Raster
	frames   *host.FrameQueue
	touches  *host.Touches
	started  time.Time
	seed     int64

	vp      Viewport
	version uint64
	img     image.Image
}

// Model is the Bubble Tea model hosting worm sessions.
type Model struct {
	opts     Options
	settings config.Settings
	logger   *log.Logger

	keys    KeyMap
	help    help.Model
	painter *Painter
	screen  *core.Screen

	width, height int
	sess          *session
	pressed       bool
	status        string
	quitting      bool
}

// NewModel creates a terminal host model.
func NewModel(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:     opts,
		settings: opts.Settings,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		painter:  NewPainter(opts.Renderer),
		screen:   core.NewScreen(max(opts.Width, 1), 1),
	}
	if opts.Width > 0 && opts.Height > 0 {
		m.resize(opts.Width, opts.Height)
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		if m.sess != nil {
			elapsed := time.Time(msg).Sub(m.sess.started)
			m.sess.frames.Flush(float64(elapsed) / float64(time.Millisecond))
		}
		return m, frameCmd(m.opts.FPS)

	case SettingsMsg:
		m.settings = msg.Settings
		m.status = "settings reloaded, press r for a new game"
		m.logger.Info("settings reloaded")
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.status = ""
		m.newSession()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fit()
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok && m.sess != nil {
		m.sess.swipe(d)
	}
	return m, nil
}

// swipe delivers a keyboard turn as a touch gesture: a start at the centre
// of the canvas and an end one swipe threshold away in direction d.
func (s *session) swipe(d worm.Direction) {
	w, h := s.raster.DisplaySize()
	cx, cy := w/2, h/2
	dist := s.settings.Input.SwipeThreshold
	delta := d.Delta()
	s.touches.Start(core.NewTouchEvent(0, cx, cy))
	s.touches.End(core.NewTouchEvent(0, cx+float64(delta.X)*dist, cy+float64(delta.Y)*dist))
}

// handleMouse turns a left-button drag over the board into a touch.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.sess == nil {
		return
	}
	x, y := m.sess.vp.ToPage(msg.X, msg.Y)
	ev := core.NewTouchEvent(0, x, y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.sess.vp.Contains(msg.X, msg.Y) {
			return
		}
		m.pressed = true
		m.sess.touches.Start(ev)
	case tea.MouseActionMotion:
		if m.pressed {
			m.sess.touches.Move(ev)
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.sess.touches.End(ev)
		}
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	if m.sess == nil {
		m.newSession()
		return
	}
	m.fit()
}

// boardArea is the terminal area left for the canvas above the footer.
func (m *Model) boardArea() core.Rect {
	footer := 1 + lipgloss.Height(m.help.View(m.keys))
	return core.NewRect(0, 0, m.width, max(m.height-footer, 1))
}

// fit lays the canvas out in the current board area.
func (m *Model) fit() {
	area := m.boardArea()
	m.screen.Resize(max(area.W, 1), area.H)
	if m.sess != nil {
		w, h := m.sess.raster.DisplaySize()
		m.sess.vp = FitViewport(area, w, h)
		m.sess.img = nil
	}
}

// newSession replaces the current game with a fresh one using the latest
// settings. The window handed to the game is the board area in half-block
// pixels, which are roughly square.
func (m *Model) newSession() {
	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	area := m.boardArea()
	rt := core.RuntimeConfig{
		WindowW:   float64(area.W),
		WindowH:   float64(area.H * 2),
		FrameRate: m.opts.FPS,
		Seed:      seed,
	}

	s := &session{
		settings: m.settings,
		raster:   canvas.NewRaster(1, 1),
		frames:   host.NewFrameQueue(),
		touches:  host.NewTouches(),
		started:  time.Now(),
		seed:     seed,
	}
	env := host.Env{Surface: s.raster, Frames: s.frames, Input: s.touches}
	s.game = worm.New(m.settings, env, rt, m.logger)
	s.game.Start()

	m.sess = s
	m.pressed = false
	m.fit()

	cfg := s.game.Configuration()
	m.logger.Debug("session started", "seed", seed, "cells_x", cfg.NbCellsX, "cells_y", cfg.NbCellsY)
}

// saveScreenshot writes the canvas at full resolution as a PNG.
func (m *Model) saveScreenshot() {
	if m.sess == nil {
		return
	}
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = fmt.Sprintf("screenshot failed: %v", err)
			return
		}
		dir = filepath.Join(home, ".worm", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = fmt.Sprintf("screenshot failed: %v", err)
		return
	}

	name := fmt.Sprintf("worm_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := m.sess.raster.SavePNG(path, 0); err != nil {
		m.status = fmt.Sprintf("screenshot failed: %v", err)
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sess == nil {
		return "starting..."
	}

	m.drawBoard()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.painter.Render(m.screen),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

// drawBoard blits the canvas onto the screen, rescaling only after the game
// painted or the layout changed, and overlays the final message.
func (m Model) drawBoard() {
	s := m.sess
	if s.img == nil || s.version != s.raster.Version() {
		if s.vp.PixW > 0 && s.vp.PixH > 0 {
			s.img = s.raster.Scaled(s.vp.PixW, s.vp.PixH)
		}
		s.version = s.raster.Version()
	}

	m.screen.Clear()
	if s.img != nil {
		m.screen.BlitHalfBlocks(s.img, s.vp.X, s.vp.Y)
	}

	if msg := s.game.Message(); msg != "" {
		drawOverlay(m.screen, append(strings.Split(msg, "\n"), "", "press r for a new game"))
	}
}

// drawOverlay draws a boxed block of centered lines in the middle of s.
func drawOverlay(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, s.Width(), s.Height()).Centered(width+4, len(lines)+2)

	s.DrawRect(box, core.Cell{Rune: ' ', FG: core.ColorBlack, BG: core.ColorWhite})
	s.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		s.DrawStyledText(x, box.Y+1+i, l, core.ColorBlack, core.ColorWhite)
	}
}

func (m Model) statusLine() string {
	snap := m.sess.game.Snapshot()
	play := m.sess.settings.Play
	level := min(snap.Level, play.MaxLevel)
	line := fmt.Sprintf("score %d  level %d/%d  speed %dms  apples %d/%d",
		snap.Score, level, play.MaxLevel, snap.Speed,
		snap.Apples, play.ApplesAt(level-1),
	)
	if m.status != "" {
		line += "  · " + m.status
	}
	return m.painter.Style().Foreground(lipgloss.Color("245")).Render(line)
}

// Run starts the Bubble Tea program. When watchPath is set, edits to that
// settings file are picked up for the next session.
func Run(ctx context.Context, opts Options, watchPath string) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if watchPath != "" {
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()
		err := config.Watch(wctx, watchPath,
			func(s config.Settings) { p.Send(SettingsMsg{Settings: s}) },
			func(err error) { logger.Warn("settings reload failed", "error", err) },
		)
		if err != nil {
			logger.Warn("cannot watch settings", "path", watchPath, "error", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
