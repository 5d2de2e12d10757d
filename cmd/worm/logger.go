package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worm/internal/config"
)

// newLogger builds the process logger from --log-level and --log-file.
// Without a log file, logs go to fallback. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadSettings loads settings per --config and returns the file to watch,
// which is empty when the embedded defaults are in use.
func loadSettings(logger *log.Logger) (config.Settings, string, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, "", err
	}
	path := config.Resolve(flagConfig)
	if path == "" {
		logger.Debug("using embedded settings")
	} else {
		logger.Debug("settings loaded", "path", path)
	}
	return settings, path, nil
}
