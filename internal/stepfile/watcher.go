package stepfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Update is emitted by Watcher after the step file changed. Exactly one of
// Doc and Err is set.
type Update struct {
	Doc  *Document
	Err  error
	Time time.Time
}

// Watcher reloads a step file whenever it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher sets up an fsnotify watch on the directory holding path, so
// saves that rename a temporary file over path are seen too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve step file path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fsw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching and returns a channel of updates. Cancelling the
// context stops watching and closes the channel.
func (w *Watcher) Watch(ctx context.Context) <-chan Update {
	out := make(chan Update, 8)

	go func() {
		defer close(out)
		defer w.watcher.Close()

		// Debounce timer to coalesce the burst of events a single save produces.
		debounceTimer := time.NewTimer(0)
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}
		defer debounceTimer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != filepath.Base(w.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				debounceTimer.Reset(w.debounce)

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				select {
				case out <- Update{Err: fmt.Errorf("watch %s: %w", w.path, err), Time: time.Now()}:
				case <-ctx.Done():
					return
				}

			case <-debounceTimer.C:
				doc, err := Load(w.path)
				select {
				case out <- Update{Doc: doc, Err: err, Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Close releases the underlying fsnotify watcher. It is only needed when
// Watch was never called.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
