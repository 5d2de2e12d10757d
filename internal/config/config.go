// Package config provides YAML-based game settings loading, validation and
// hot reloading for the worm game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// Settings contains all tunables of a game session.
type Settings struct {
	Grid   GridSettings  `yaml:"grid"`
	Play   PlaySettings  `yaml:"play"`
	Input  InputSettings `yaml:"input"`
	Colors ColorSettings `yaml:"colors"`
}

// GridSettings defines the playfield geometry.
type GridSettings struct {
	CellsX   int     `yaml:"cells_x"`
	CellsY   int     `yaml:"cells_y"` // 0 = derive from window aspect ratio
	CellSize int     `yaml:"cell_size"`
	Scale    float64 `yaml:"scale"`
}

// PlaySettings defines speed, progression and scoring.
type PlaySettings struct {
	Speed       int `yaml:"speed"`      // ms per move at the first level
	SpeedStep   int `yaml:"speed_step"` // ms removed per level up
	MaxLevel    int `yaml:"max_level"`
	Apples      int `yaml:"apples"` // apples seeded per level multiplier
	Growth      int `yaml:"growth"`
	ApplePoints int `yaml:"apple_points"`
	LevelPoints int `yaml:"level_points"`
}

// InputSettings defines swipe recognition.
type InputSettings struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"` // page pixels
}

// ColorSettings holds colours as strings ("#rrggbb" or a name).
type ColorSettings struct {
	Levels []string `yaml:"levels"`
	Head   string   `yaml:"head"`
	Eyes   string   `yaml:"eyes"`
	Tail   string   `yaml:"tail"`
	Grid   string   `yaml:"grid"`
	Apple  string   `yaml:"apple"`
	Text   string   `yaml:"text"`
}

// Palette is the parsed form of ColorSettings.
type Palette struct {
	Levels []core.Color
	Head   core.Color
	Eyes   core.Color
	Tail   core.Color
	Grid   core.Color
	Apple  core.Color
	Text   core.Color
}

// Palette parses every colour.
func (c ColorSettings) Palette() (Palette, error) {
	var p Palette
	for i, s := range c.Levels {
		col, err := core.ParseColor(s)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.levels[%d]: %w", i, err)
		}
		p.Levels = append(p.Levels, col)
	}

	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"head", c.Head, &p.Head},
		{"eyes", c.Eyes, &p.Eyes},
		{"tail", c.Tail, &p.Tail},
		{"grid", c.Grid, &p.Grid},
		{"apple", c.Apple, &p.Apple},
		{"text", c.Text, &p.Text},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// LevelColor returns the background of a 0-indexed level, repeating the
// last colour past the end of the list.
func (p Palette) LevelColor(level int) core.Color {
	if len(p.Levels) == 0 {
		return core.ColorWhite
	}
	return p.Levels[core.Clamp(level, 0, len(p.Levels)-1)]
}

// LevelSpeed returns the move interval in ms at a 0-indexed level.
func (p PlaySettings) LevelSpeed(level int) int {
	return p.Speed - p.SpeedStep*level
}

// ApplesAt returns how many apples are seeded at a 0-indexed level.
func (p PlaySettings) ApplesAt(level int) int {
	return p.Apples * (level + 1)
}

// Validate rejects settings no session could run with.
func (s Settings) Validate() error {
	switch {
	case s.Grid.CellsX <= 0:
		return fmt.Errorf("grid.cells_x must be positive, got %d", s.Grid.CellsX)
	case s.Grid.CellsY < 0:
		return fmt.Errorf("grid.cells_y must not be negative, got %d", s.Grid.CellsY)
	case s.Grid.CellSize <= 0:
		return fmt.Errorf("grid.cell_size must be positive, got %d", s.Grid.CellSize)
	case s.Grid.Scale <= 0:
		return fmt.Errorf("grid.scale must be positive, got %v", s.Grid.Scale)
	case s.Play.MaxLevel <= 0:
		return fmt.Errorf("play.max_level must be positive, got %d", s.Play.MaxLevel)
	case s.Play.Apples <= 0:
		return fmt.Errorf("play.apples must be positive, got %d", s.Play.Apples)
	case s.Play.Growth < 0:
		return fmt.Errorf("play.growth must not be negative, got %d", s.Play.Growth)
	case s.Play.ApplePoints < 0:
		return fmt.Errorf("play.apple_points must not be negative, got %d", s.Play.ApplePoints)
	case s.Play.LevelPoints < 0:
		return fmt.Errorf("play.level_points must not be negative, got %d", s.Play.LevelPoints)
	case s.Play.SpeedStep < 0:
		return fmt.Errorf("play.speed_step must not be negative, got %d", s.Play.SpeedStep)
	case s.Input.SwipeThreshold <= 0:
		return fmt.Errorf("input.swipe_threshold must be positive, got %v", s.Input.SwipeThreshold)
	}

	// The last playable level is max_level-1; its interval must stay positive.
	if last := s.Play.LevelSpeed(s.Play.MaxLevel - 1); last <= 0 {
		return fmt.Errorf("play.speed %d with speed_step %d reaches %dms before level %d",
			s.Play.Speed, s.Play.SpeedStep, last, s.Play.MaxLevel)
	}

	p, err := s.Colors.Palette()
	if err != nil {
		return err
	}
	if len(p.Levels) < s.Play.MaxLevel {
		return fmt.Errorf("colors.levels has %d entries, need %d", len(p.Levels), s.Play.MaxLevel)
	}
	return nil
}
