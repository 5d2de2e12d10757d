package host

import "github.com/vovakirdan/tui-worm/internal/canvas"

// Env bundles the host capabilities handed to a game session.
type Env struct {
	Surface canvas.Surface
	Frames  Scheduler
	Input   Input
}
