// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: source/watcher.go
// Summary: Change notification for file-backed sources. Write and create
// events on the watched path invoke a callback so the host can refresh
// its content window.

package source

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher invokes a callback whenever the watched file changes on disk.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path. onChange is called from a background
// goroutine; the caller is responsible for marshalling to its own loop.
func Watch(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}
	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func()) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				onChange()
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; the next poll of Size() still
			// sees the real file.
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
