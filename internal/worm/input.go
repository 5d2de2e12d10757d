package worm

import (
	"math"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// SwipeDirection classifies a swipe displacement in page pixels.
// The horizontal axis is tested first: any swipe that travels at least
// threshold sideways turns left or right, even when it travelled further
// vertically.
func SwipeDirection(dx, dy, threshold float64) (Direction, bool) {
	switch {
	case math.Abs(dx) >= threshold:
		if dx < 0 {
			return DirLeft, true
		}
		return DirRight, true
	case math.Abs(dy) >= threshold:
		if dy < 0 {
			return DirUp, true
		}
		return DirDown, true
	}
	return 0, false
}

func (g *Game) bindInput() {
	if g.env.Input == nil {
		return
	}
	g.env.Input.OnTouchStart(g.onTouchStart)
	g.env.Input.OnTouchMove(g.onTouchMove)
	g.env.Input.OnTouchEnd(g.onTouchEnd)
}

func (g *Game) onTouchStart(e core.TouchEvent) {
	if p, ok := e.First(); ok {
		g.touch = p
		g.touching = true
	}
}

func (g *Game) onTouchMove(core.TouchEvent) {}

func (g *Game) onTouchEnd(e core.TouchEvent) {
	p, ok := e.First()
	if !ok || !g.touching {
		return
	}
	g.touching = false

	dx := p.PageX - g.touch.PageX
	dy := p.PageY - g.touch.PageY
	if d, ok := SwipeDirection(dx, dy, g.settings.Input.SwipeThreshold); ok {
		g.worm.SetDirection(d)
	}
}
