package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-worm/internal/platform/tui"
)

var flagScreenshots string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a worm session in this terminal.

Controls:
  Arrows/WASD    - Steer
  Mouse drag     - Swipe to steer
  R              - New game
  Ctrl+S         - Save a PNG screenshot
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Edits to the settings file apply from the next game.

Examples:
  worm play
  worm play --seed 7
  worm play --config ./my-worm.yaml --log-file worm.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshots, "screenshots", "", "Screenshot directory (default: ~/.worm/screenshots)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alt screen owns stdout, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	settings, watchPath, err := loadSettings(logger)
	if err != nil {
		return err
	}

	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(cmd.Context(), tui.Options{
		Settings:      settings,
		Seed:          flagSeed,
		FPS:           flagFPS,
		Logger:        logger,
		ScreenshotDir: flagScreenshots,
		Width:         width,
		Height:        height,
	}, watchPath)
}
