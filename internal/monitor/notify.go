package monitor

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
)

// Notifier delivers the change signal to the target process. It is
// stateless and idempotent per call: each Notify sends exactly one signal.
type Notifier interface {
	Notify() error
}

// NewNotifier returns a Notifier that sends sig to pid on each call. The
// pid is fixed for the lifetime of the monitor.
func NewNotifier(pid int, sig syscall.Signal) Notifier {
	return newNotifier(pid, sig)
}

// ParseSignal resolves a signal given by name ("USR1", "SIGUSR1") or by
// decimal number.
func ParseSignal(s string) (syscall.Signal, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("signal number must be positive, got %d", n)
		}
		return syscall.Signal(n), nil
	}

	name := strings.TrimPrefix(strings.ToUpper(s), "SIG")
	if sig, ok := signalsByName[name]; ok {
		return sig, nil
	}
	return 0, fmt.Errorf("unknown signal %q", s)
}
