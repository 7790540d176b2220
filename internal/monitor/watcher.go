// Package monitor implements the sigwatch engine: one watch on one
// filesystem path, a blocking readiness loop, an event-record reader, and a
// signal dispatcher, composed into a single synchronous run loop.
//
// The package uses raw inotify on Linux and falls back to the fsnotify
// package elsewhere; both backends sit behind the Watcher interface.
package monitor

import "io"

// Event mask bits reported in an EventRecord. The values match the Linux
// inotify bits so both watcher backends agree on the wire-level meaning.
const (
	MaskModify uint32 = 0x00000002 // IN_MODIFY
	MaskCreate uint32 = 0x00000100 // IN_CREATE
)

// EventRecord is the fixed-size header of one change notification. The
// engine only needs successful receipt of the header; it never classifies
// the record by subtype, and any record at all triggers a dispatch.
type EventRecord struct {
	Wd     int32  // Watch descriptor the event belongs to
	Mask   uint32 // Event mask (MaskModify, MaskCreate, ...)
	Cookie uint32 // Cookie correlating related events
	Len    uint32 // Declared length of the optional trailing name
}

// Watcher is one registered watch on one path for the {Modify, Create}
// event classes. It is created once at startup and stays open for the life
// of the process: the run loop never closes it, because the process only
// ever ends in failure or external termination. Close exists for tests.
type Watcher interface {
	// Wait blocks, with no timeout, until at least one event is pending.
	Wait() error

	// ReadEvent consumes exactly one event record. It must not return
	// success until the full fixed-size header has been read.
	ReadEvent() (EventRecord, error)

	Close() error
}

// NewWatcher registers a watch on path for the {Modify, Create} event
// classes. The path must exist; there is no retry if it is absent.
// Registration failures carry the underlying OS error.
func NewWatcher(path string) (Watcher, error) {
	return newWatcher(path)
}

// readFull fills buf from read, retrying the remaining byte count after a
// short read. Any error from read propagates immediately, with no retry. A
// zero-length read with no error means the channel can never complete the
// record, which is reported as io.ErrUnexpectedEOF.
func readFull(read func([]byte) (int, error), buf []byte) error {
	for off := 0; off < len(buf); {
		n, err := read(buf[off:])
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrUnexpectedEOF
		}
		off += n
	}
	return nil
}
