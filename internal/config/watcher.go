// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chrono-tui.
package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher watches the config file and delivers reloaded configs while
// the application runs. Editors typically replace files with a
// write-then-rename, so the parent directory is watched rather than the
// file itself.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
	ctx     context.Context
	cancel  context.CancelFunc
	reloads chan *Config
}

// NewWatcher creates a watcher for the given config path. Reload
// delivery is debounced: bursts of write events (editor save, rename,
// chmod) collapse into at most one reload per interval.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    path,
		watcher: fsw,
		limiter: rate.NewLimiter(rate.Every(debounce), 1),
		ctx:     ctx,
		cancel:  cancel,
		reloads: make(chan *Config, 1),
	}

	go w.processEvents()
	return w, nil
}

// Reloads returns the channel on which reloaded configs are delivered.
// A config that fails to load is skipped silently; the previous one
// stays in effect.
func (w *Watcher) Reloads() <-chan *Config {
	return w.reloads
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents processes file system events until the watcher closes.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			w.reload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; keep the current config.
		}
	}
}

// reload loads the config file and hands it off without blocking.
func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		return
	}

	select {
	case w.reloads <- cfg:
	default:
		// A pending reload is already queued; the newest one replaces it.
		select {
		case <-w.reloads:
		default:
		}
		select {
		case w.reloads <- cfg:
		default:
		}
	}
}
