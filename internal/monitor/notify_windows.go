//go:build windows

package monitor

import (
	"errors"
	"syscall"
)

const DefaultSignalName = "SIGTERM"

var signalsByName = map[string]syscall.Signal{
	"INT":  syscall.SIGINT,
	"TERM": syscall.SIGTERM,
}

type winNotifier struct{}

func newNotifier(pid int, sig syscall.Signal) Notifier { return &winNotifier{} }

func (n *winNotifier) Notify() error {
	return errors.New("signal delivery is not supported on windows")
}
