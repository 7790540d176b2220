//go:build !linux

package monitor

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestNewWatcherMissingPath(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("NewWatcher succeeded on a nonexistent path")
	}
	if got := ExitCode(err); got != int(syscall.ENOENT) {
		t.Errorf("ExitCode(%v) = %d, want ENOENT (%d)", err, got, int(syscall.ENOENT))
	}
}

func TestWatcherReportsModify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.txt")
	if err := os.WriteFile(path, []byte("begin\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	type result struct {
		rec EventRecord
		err error
	}
	resCh := make(chan result, 1)
	go func() {
		if err := w.Wait(); err != nil {
			resCh <- result{err: err}
			return
		}
		rec, err := w.ReadEvent()
		resCh <- result{rec: rec, err: err}
	}()

	// Let the goroutine block on the event channel before the write.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("begin\ntick 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case res := <-resCh:
		if res.err != nil {
			t.Fatalf("wait/read: %v", res.err)
		}
		if res.rec.Mask&(MaskModify|MaskCreate) == 0 {
			t.Errorf("mask %#x is missing both the modify and create bits", res.rec.Mask)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event after write")
	}
}
