package monitor

import (
	"errors"
	"syscall"
)

// ErrBadArguments reports a malformed command line: wrong argument count,
// an unparsable PID, or an unusable signal. It is rejected before any watch
// registration is attempted and maps to the fixed EINVAL exit code.
var ErrBadArguments = errors.New("invalid arguments")

// ExitCode maps a run error to the process exit status. A nil error maps to
// 0, which is defined but unreachable in normal operation: the run loop is
// unbounded and only ends in failure. Errors carrying a syscall.Errno exit
// with that OS error number; argument errors exit with EINVAL; anything
// else falls back to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	if errors.Is(err, ErrBadArguments) {
		return int(syscall.EINVAL)
	}
	return 1
}
