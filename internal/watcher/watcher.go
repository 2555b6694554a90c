// Package watcher signals when the data file changes on disk.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/gommon/log"
)

// DefaultSettle is how long the file must stay quiet before a change is
// reported. Writers usually touch a file several times per save.
const DefaultSettle = 250 * time.Millisecond

type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	settle  time.Duration
}

// New watches path. The parent directory is watched rather than the file,
// so replacing the file (rename over it) is seen too.
func New(path string, settle time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{watcher: w, path: abs, settle: settle}, nil
}

// Watch emits once per burst of writes to the file. The channel closes when
// ctx is done or the watcher is stopped.
func (w *Watcher) Watch(ctx context.Context) <-chan struct{} {
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		timer := time.NewTimer(w.settle)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				timer.Reset(w.settle)
			case <-timer.C:
				select {
				case changes <- struct{}{}:
				default:
					// A change is already pending.
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("watch %s: %v", w.path, err)
			}
		}
	}()

	return changes
}

func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
