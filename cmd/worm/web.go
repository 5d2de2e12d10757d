package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/platform/web"
)

var (
	flagWebAddr     string
	flagMaxSessions int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the worm HTTP server",
	Long: `Start an HTTP server that runs worm sessions and serves their frames.

Endpoints:
  POST   /sessions                  {"width":375,"height":667}
  GET    /sessions/:id              state, score, level, speed
  GET    /sessions/:id/frame.png    current frame (?w=N to downscale)
  POST   /sessions/:id/touchstart   {"changedTouches":[{"pageX":..,"pageY":..}]}
  POST   /sessions/:id/touchend     same body as touchstart
  DELETE /sessions/:id

Examples:
  worm web
  worm web --addr 127.0.0.1:9000 --max-sessions 8`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 64, "Maximum concurrent sessions")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	settings, watchPath, err := loadSettings(logger)
	if err != nil {
		return err
	}

	server := web.NewServer(web.Config{
		Settings:    settings,
		FPS:         flagFPS,
		Seed:        flagSeed,
		MaxSessions: flagMaxSessions,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if watchPath != "" {
		err := config.Watch(ctx, watchPath, server.SetSettings, func(err error) {
			logger.Warn("settings reload failed", "error", err)
		})
		if err != nil {
			logger.Warn("cannot watch settings", "path", watchPath, "error", err)
		}
	}

	fmt.Printf("Starting worm HTTP server on %s\n", flagWebAddr)
	return server.ListenAndServe(ctx, flagWebAddr)
}
