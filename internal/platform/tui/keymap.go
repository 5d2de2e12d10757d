package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-worm/internal/worm"
)

// KeyMap holds the terminal key bindings. A direction key is sent to the
// game as a swipe gesture, the same input a mouse drag produces.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction returns the steering direction bound to msg, if any.
func (k KeyMap) Direction(msg fmt.Stringer) (worm.Direction, bool) {
	for _, b := range []struct {
		binding key.Binding
		dir     worm.Direction
	}{
		{k.Up, worm.DirUp},
		{k.Down, worm.DirDown},
		{k.Left, worm.DirLeft},
		{k.Right, worm.DirRight},
	} {
		if key.Matches(msg, b.binding) {
			return b.dir, true
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Screenshot, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}
