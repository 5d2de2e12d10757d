package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-worm/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings. Each program owns one,
// so styles follow that program's colour profile.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewPainter creates a painter; a nil renderer uses lipgloss's default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[styleKey]lipgloss.Style),
	}
}

// Style returns a plain style bound to the painter's renderer.
func (p *Painter) Style() lipgloss.Style {
	return p.renderer.NewStyle()
}

func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if st, ok := p.styles[k]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if !fg.IsZero() {
		st = st.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsZero() {
		st = st.Background(lipgloss.Color(bg.Hex()))
	}
	p.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colours share one style run to keep the
// number of escape sequences down.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG.IsZero() && start.BG.IsZero() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
