// worm is a minimal worm game played in the terminal, over SSH or through
// an HTTP host.
//
// Usage:
//
//	worm play                - Play in the terminal
//	worm serve               - Start SSH server for remote play
//	worm web                 - Start HTTP server driving sessions server-side
//	worm snapshot            - Run a session headlessly and save a PNG frame
//	worm config              - Print the effective settings
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.worm/worm.yaml, ./configs/worm.yaml)
//	--fps <rate>        - Frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible apples
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worm",
	Short: "Worm - eat the apples, dodge your tail",
	Long: `Worm is a small grid game: steer the worm onto the apples, grow, and
clear ten levels without leaving the grid or biting your own tail.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  web       - Start HTTP server with PNG frames
  snapshot  - Headless run that saves a PNG
  config    - Print the effective settings

Examples:
  worm play
  worm play --seed 42
  worm serve --ssh :2222
  worm web --addr :8080
  worm snapshot --frames 120 --swipe 20:down --out frame.png
  worm config > ~/.worm/worm.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}
