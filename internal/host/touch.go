package host

import "github.com/vovakirdan/tui-worm/internal/core"

// Input registers touch handlers. A later registration for the same phase
// replaces the earlier one.
type Input interface {
	OnTouchStart(h core.TouchHandler)
	OnTouchMove(h core.TouchHandler)
	OnTouchEnd(h core.TouchHandler)
}

// Touches is the host side of Input: platforms translate their own pointer
// events into Start, Move and End calls.
type Touches struct {
	start core.TouchHandler
	move  core.TouchHandler
	end   core.TouchHandler
}

// NewTouches creates a dispatcher with no handlers.
func NewTouches() *Touches {
	return &Touches{}
}

// OnTouchStart implements Input.
func (t *Touches) OnTouchStart(h core.TouchHandler) { t.start = h }

// OnTouchMove implements Input.
func (t *Touches) OnTouchMove(h core.TouchHandler) { t.move = h }

// OnTouchEnd implements Input.
func (t *Touches) OnTouchEnd(h core.TouchHandler) { t.end = h }

// Start delivers a touch start event.
func (t *Touches) Start(e core.TouchEvent) { dispatch(t.start, e) }

// Move delivers a touch move event.
func (t *Touches) Move(e core.TouchEvent) { dispatch(t.move, e) }

// End delivers a touch end event.
func (t *Touches) End(e core.TouchEvent) { dispatch(t.end, e) }

func dispatch(h core.TouchHandler, e core.TouchEvent) {
	if h != nil && len(e.ChangedTouches) > 0 {
		h(e)
	}
}
