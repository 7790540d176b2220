//go:build !linux

package monitor

import (
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

var errWatcherClosed = errors.New("watcher closed")

// fsnotifyWatcher adapts fsnotify's channel API to the blocking
// wait/read-one contract used on Linux. Wait stashes the next qualifying
// event; ReadEvent hands it out as a synthesized record.
type fsnotifyWatcher struct {
	fw      *fsnotify.Watcher
	path    string
	pending *fsnotify.Event
}

func newWatcher(path string) (Watcher, error) {
	// The path must exist at registration time; fsnotify would otherwise
	// report the failure only from Add, with a less specific error.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &fsnotifyWatcher{fw: fw, path: path}, nil
}

// Wait blocks until a Create or Write event is pending. Other event types
// on the path are discarded without waking the run loop, matching the
// {Modify, Create} registration mask of the Linux backend.
func (w *fsnotifyWatcher) Wait() error {
	if w.pending != nil {
		return nil
	}
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return fmt.Errorf("watch %s: %w", w.path, errWatcherClosed)
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				w.pending = &ev
				return nil
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return fmt.Errorf("watch %s: %w", w.path, errWatcherClosed)
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}

func (w *fsnotifyWatcher) ReadEvent() (EventRecord, error) {
	if w.pending == nil {
		if err := w.Wait(); err != nil {
			return EventRecord{}, err
		}
	}
	ev := w.pending
	w.pending = nil

	var mask uint32
	if ev.Has(fsnotify.Create) {
		mask |= MaskCreate
	}
	if ev.Has(fsnotify.Write) {
		mask |= MaskModify
	}
	return EventRecord{Mask: mask}, nil
}

func (w *fsnotifyWatcher) Close() error {
	return w.fw.Close()
}
