// Package watch reports changes to a texture directory so faces can be
// reloaded on the render thread.
package watch

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher coalesces file events in one directory into a single pending
// change signal.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	match   func(name string) bool
	log     *slog.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New watches dir. match filters event paths; nil accepts every file.
func New(dir string, match func(name string) bool, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		match:   match,
		log:     logger,
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Pending reports and clears a queued change without blocking.
func (w *Watcher) Pending() bool {
	select {
	case <-w.changes:
		return true
	default:
		return false
	}
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.match != nil && !w.match(event.Name) {
				continue
			}
			w.log.Debug("texture file changed", "path", event.Name, "op", event.Op.String())
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("texture watcher error", "err", err)
		}
	}
}

// Close stops watching. It is safe to call more than once and from any goroutine.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}
