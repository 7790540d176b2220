package monitor

import "go.uber.org/zap"

// State is the engine's position in its wait/read/notify cycle. It exists
// for diagnostics; the cycle itself is a straight line.
type State int

const (
	StateIdle State = iota
	StateWaiting
	StateReading
	StateNotifying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateReading:
		return "reading"
	case StateNotifying:
		return "notifying"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures a Monitor.
type Options struct {
	// Logger for lifecycle and per-dispatch events. Built from LogLevel
	// when nil.
	Logger *zap.Logger

	// LogLevel selects verbosity when no Logger is supplied.
	LogLevel LogLevel
}

// Monitor bundles the watch handle and the notification target, the whole
// of the engine's state. Both are fixed at construction and read-only
// across loop iterations; nothing else carries over between them.
type Monitor struct {
	watcher  Watcher
	notifier Notifier
	logger   *zap.Logger
	state    State
}

// New assembles a monitor from an established watch and a notifier.
func New(w Watcher, n Notifier, opts Options) *Monitor {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(opts.LogLevel)
	}
	return &Monitor{
		watcher:  w,
		notifier: n,
		logger:   logger,
		state:    StateIdle,
	}
}

// Run executes the engine loop: block until an event is pending, consume
// exactly one record, deliver exactly one signal, repeat. The loop is
// single-threaded and fully synchronous; the three phases never overlap and
// no record is queued beyond what the OS channel itself buffers.
//
// Run never returns nil. The loop is unbounded, so the only way out is an
// unrecoverable error, which moves the monitor to its terminal failed
// state. The watch stays open on the way out: the process has no graceful
// shutdown, only failure or external termination.
func (m *Monitor) Run() error {
	for {
		m.state = StateWaiting
		if err := m.watcher.Wait(); err != nil {
			return m.fail(err)
		}

		m.state = StateReading
		rec, err := m.watcher.ReadEvent()
		if err != nil {
			return m.fail(err)
		}

		// No filtering by subtype: any fully read record is dispatched.
		m.state = StateNotifying
		m.logger.Debug("dispatching",
			zap.Int32("wd", rec.Wd),
			zap.Uint32("mask", rec.Mask),
			zap.Uint32("cookie", rec.Cookie),
		)
		if err := m.notifier.Notify(); err != nil {
			return m.fail(err)
		}
	}
}

// State reports the engine's current phase.
func (m *Monitor) State() State {
	return m.state
}

func (m *Monitor) fail(err error) error {
	m.state = StateFailed
	m.logger.Error("monitor failed", zap.Error(err))
	return err
}
