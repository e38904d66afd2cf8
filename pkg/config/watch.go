package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const debounceTime = 100 * time.Millisecond

// Watch reloads configPath whenever it changes on disk and hands the new
// Config to onChange. The parent directory is watched so editors that
// replace the file by rename are picked up. Watch returns once the watcher
// is running; it stops when ctx is done.
func Watch(ctx context.Context, configPath string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go watchLoop(ctx, watcher, configPath, onChange)
	log.Debugf("Watching config file: %s", configPath)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, configPath string, onChange func(*Config)) {
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Errorf("Failed to close config watcher: %v", err)
		}
	}()

	target := filepath.Clean(configPath)
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceTime, func() {
				config, err := LoadConfig(configPath)
				if err != nil {
					log.Warnf("Config reload failed: %v", err)
					return
				}
				log.Infof("Reloaded config from %s", configPath)
				onChange(config)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("Config watcher error: %v", err)
		}
	}
}
