//go:build linux

package monitor

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// eventHeaderSize is the fixed portion of a wire-level inotify record:
// watch descriptor, mask, cookie, and the declared name length.
const eventHeaderSize = unix.SizeofInotifyEvent

// inotifyWatcher owns one inotify descriptor with a single watch attached.
type inotifyWatcher struct {
	fd   int
	wd   int
	path string
}

func newWatcher(path string) (Watcher, error) {
	fd, err := unix.InotifyInit1(0)
	if err != nil {
		return nil, fmt.Errorf("inotify init: %w", err)
	}

	wd, err := unix.InotifyAddWatch(fd, path, unix.IN_MODIFY|unix.IN_CREATE)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &inotifyWatcher{fd: fd, wd: wd, path: path}, nil
}

// Wait parks the caller in poll(2) with no timeout until the descriptor is
// readable. An interrupted or failed poll propagates its error; the caller
// treats every failure as fatal.
func (w *inotifyWatcher) Wait() error {
	fds := []unix.PollFd{{Fd: int32(w.fd), Events: unix.POLLIN}}
	if _, err := unix.Poll(fds, -1); err != nil {
		return fmt.Errorf("poll %s: %w", w.path, err)
	}
	return nil
}

// ReadEvent consumes exactly one fixed-size event header, retrying the
// remaining byte count on short reads. The trailing name that accompanies
// events on directory watches is not drained: sigwatch monitors a regular
// file, whose events carry no name (Len is always zero).
func (w *inotifyWatcher) ReadEvent() (EventRecord, error) {
	var buf [eventHeaderSize]byte
	err := readFull(func(p []byte) (int, error) {
		return unix.Read(w.fd, p)
	}, buf[:])
	if err != nil {
		return EventRecord{}, fmt.Errorf("read event: %w", err)
	}

	raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[0]))
	return EventRecord{
		Wd:     raw.Wd,
		Mask:   raw.Mask,
		Cookie: raw.Cookie,
		Len:    raw.Len,
	}, nil
}

func (w *inotifyWatcher) Close() error {
	return unix.Close(w.fd)
}
