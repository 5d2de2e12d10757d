// Package tui hosts worm sessions in a terminal through Bubble Tea, locally
// or over SSH. It plays the role of a browser: it schedules frames, turns
// mouse drags into touches and shows the canvas as half-block pixels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that fires the next frame at fps.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
