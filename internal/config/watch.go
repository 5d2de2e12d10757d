package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file at path whenever it is written or
// replaced, passing valid settings to onChange and failures to onError
// (which may be nil). The parent directory is watched so editors that save by
// renaming are noticed. Watch returns once the watcher is running; it stops
// when ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(Settings), onError func(error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	report := func(err error) {
		if onError != nil {
			onError(err)
		}
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFile(abs)
				if err != nil {
					report(err)
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				report(err)
			}
		}
	}()

	return nil
}
