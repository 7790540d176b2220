//go:build !windows

package monitor

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultSignalName is the signal delivered when no override is given.
const DefaultSignalName = "SIGUSR1"

var signalsByName = map[string]syscall.Signal{
	"HUP":   syscall.SIGHUP,
	"INT":   syscall.SIGINT,
	"ALRM":  syscall.SIGALRM,
	"TERM":  syscall.SIGTERM,
	"USR1":  syscall.SIGUSR1,
	"USR2":  syscall.SIGUSR2,
	"CONT":  syscall.SIGCONT,
	"WINCH": syscall.SIGWINCH,
}

type killNotifier struct {
	pid int
	sig syscall.Signal
}

func newNotifier(pid int, sig syscall.Signal) Notifier {
	return &killNotifier{pid: pid, sig: sig}
}

// Notify sends one signal via kill(2). ESRCH and EPERM surface unwrapped so
// the process exit code reports the OS error number.
func (n *killNotifier) Notify() error {
	if err := unix.Kill(n.pid, n.sig); err != nil {
		return fmt.Errorf("signal %d to pid %d: %w", n.sig, n.pid, err)
	}
	return nil
}
