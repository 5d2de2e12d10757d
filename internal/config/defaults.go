package config

import (
	_ "embed"
)

//go:embed defaults/worm.yaml
var defaultWormYAML []byte

// DefaultSettings returns the built-in settings. They mirror
// defaults/worm.yaml and are used when the embedded file cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		Grid: GridSettings{
			CellsX:   14,
			CellsY:   0,
			CellSize: 20,
			Scale:    2.0,
		},
		Play: PlaySettings{
			Speed:       100,
			SpeedStep:   7,
			MaxLevel:    10,
			Apples:      5,
			Growth:      3,
			ApplePoints: 100,
			LevelPoints: 1000,
		},
		Input: InputSettings{
			SwipeThreshold: 100,
		},
		Colors: ColorSettings{
			Levels: []string{
				"#fafafa",
				"#ffffcc",
				"#ffe6ee",
				"#e6f2ff",
				"#e6ffe6",
				"#fff0e6",
				"#e6e6ff",
				"#f9f2ec",
				"#e6ffe6",
				"#ff4d4d",
			},
			Head:  "#111111",
			Eyes:  "white",
			Tail:  "#333333",
			Grid:  "#f1f1f1",
			Apple: "red",
			Text:  "black",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWormYAML
}
