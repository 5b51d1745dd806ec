// Package watch wraps fsnotify into a debounced file-change notifier: a
// burst of events within a short window collapses into a single callback
// invocation, the behavior the build orchestrator's lint watch mode needs
// to avoid re-invoking the linter once per saved file in a bulk edit.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher recursively watches a directory tree and invokes onChange at
// most once per debounce window, coalescing bursts of events.
type Watcher struct {
	fsw     *fsnotify.Watcher
	done    chan struct{}
	stopped chan struct{}
}

// addRecursive registers every directory under root with fsw, since
// fsnotify watches are not recursive on their own.
func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}

// Watch starts watching root (recursively) and calls onChange whenever the
// tree changes, debounced. Call Close to stop.
func Watch(root string, extensions map[string]struct{}, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	if err := addRecursive(fsw, root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{}), stopped: make(chan struct{})}
	go w.loop(extensions, onChange)
	return w, nil
}

func (w *Watcher) loop(extensions map[string]struct{}, onChange func()) {
	defer close(w.stopped)
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev, extensions) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(defaultDebounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(defaultDebounce)
			}
		case <-fire:
			onChange()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func relevant(ev fsnotify.Event, extensions map[string]struct{}) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := extOf(ev.Name)
	_, ok := extensions[ext]
	return ok
}

func extOf(name string) string {
	for i := len(name) - 1; i >= 0 && name[i] != '/'; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return ""
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	<-w.stopped
	return w.fsw.Close()
}
