package monitor

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// fragmentedReader delivers one byte per call, optionally failing once pos
// reaches failAt. failAt of -1 never fails.
type fragmentedReader struct {
	data   []byte
	pos    int
	failAt int
	err    error
	calls  int
}

func (r *fragmentedReader) read(p []byte) (int, error) {
	r.calls++
	if r.err != nil && r.pos == r.failAt {
		return 0, r.err
	}
	if r.pos >= len(r.data) {
		return 0, nil
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

func TestReadFullAssemblesFragmentedRecord(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i + 1)
	}
	r := &fragmentedReader{data: data, failAt: -1}

	buf := make([]byte, 16)
	if err := readFull(r.read, buf); err != nil {
		t.Fatalf("readFull: %v", err)
	}
	if !bytes.Equal(buf, data) {
		t.Errorf("assembled %v, want %v", buf, data)
	}
	if r.calls != 16 {
		t.Errorf("read called %d times, want 16", r.calls)
	}
}

func TestReadFullPropagatesErrorWithoutRetry(t *testing.T) {
	boom := errors.New("read failed")
	r := &fragmentedReader{data: make([]byte, 16), failAt: 5, err: boom}

	err := readFull(r.read, make([]byte, 16))
	if !errors.Is(err, boom) {
		t.Fatalf("readFull returned %v, want %v", err, boom)
	}
	// Five successful single-byte reads, then the failing one. No retry
	// after the error.
	if r.calls != 6 {
		t.Errorf("read called %d times, want 6", r.calls)
	}
}

func TestReadFullStalledChannel(t *testing.T) {
	r := &fragmentedReader{data: make([]byte, 4), failAt: -1}

	err := readFull(r.read, make([]byte, 16))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("readFull returned %v, want %v", err, io.ErrUnexpectedEOF)
	}
}
