package monitor

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"errno", fmt.Errorf("watch /nope: %w", syscall.ENOENT), int(syscall.ENOENT)},
		{"nested errno", fmt.Errorf("read event: %w", fmt.Errorf("poll: %w", syscall.EINTR)), int(syscall.EINTR)},
		{"no such process", fmt.Errorf("signal 10 to pid 4242: %w", syscall.ESRCH), int(syscall.ESRCH)},
		{"arguments", fmt.Errorf("%w: PID %q is not a number", ErrBadArguments, "x"), int(syscall.EINVAL)},
		{"other", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
