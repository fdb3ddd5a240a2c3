// Package invoker provides components that call a function repeatedly, each
// call returning the delay until the next one.
//
// Repeated fires during the engine's primary phase and Late during its late
// phase. Neither has a terminal state; detach it from the engine to stop it.
package invoker

import (
	"time"

	"go.uber.org/zap"

	"github.com/tylerbonnell/brigsby/internal/engine"
)

// Func is invoked once the delay has elapsed. execution is the zero-based
// number of previous invocations. It returns the delay until the next one.
type Func func(data engine.UpdateData, execution int) time.Duration

// Option configures an invoker.
type Option func(*state)

// WithInitialDelay sets the delay before the first invocation. The default is
// zero, so the first cycle with a positive elapsed time fires.
func WithInitialDelay(d time.Duration) Option {
	return func(s *state) { s.remaining = d }
}

// WithLogger logs each invocation at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *state) { s.logger = logger }
}

// WithName sets the name used in log entries.
func WithName(name string) Option {
	return func(s *state) { s.name = name }
}

type state struct {
	fn        Func
	remaining time.Duration
	execution int
	name      string
	logger    *zap.Logger
}

func newState(fn Func, opts []Option) state {
	s := state{fn: fn, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// advance consumes data.ElapsedTime and fires once the delay goes negative.
// It reports whether fn ran.
func (s *state) advance(data engine.UpdateData) bool {
	s.remaining -= data.ElapsedTime
	if s.remaining >= 0 {
		return false
	}

	execution := s.execution
	s.remaining = s.fn(data, execution)
	s.execution++

	s.logger.Debug("invoked",
		zap.String("name", s.name),
		zap.Int("execution", execution),
		zap.Uint64("tick", data.Tick),
		zap.Duration("next_delay", s.remaining),
	)
	return true
}

// Repeated runs its function during the primary phase.
type Repeated struct {
	s state
}

// New creates a primary-phase invoker.
func New(fn Func, opts ...Option) *Repeated {
	return &Repeated{s: newState(fn, opts)}
}

// Update implements engine.Updater.
func (r *Repeated) Update(data engine.UpdateData) {
	r.s.advance(data)
}

// Advance moves the invoker forward by elapsed outside of an engine and
// reports whether the function ran.
func (r *Repeated) Advance(elapsed time.Duration) bool {
	return r.s.advance(engine.UpdateData{ElapsedTime: elapsed})
}

// Remaining returns the time left until the next invocation.
func (r *Repeated) Remaining() time.Duration { return r.s.remaining }

// Executions returns how many times the function has run.
func (r *Repeated) Executions() int { return r.s.execution }

// Late runs its function during the late phase, after all primary-phase
// components of the same cycle.
type Late struct {
	s state
}

// NewLate creates a late-phase invoker.
func NewLate(fn Func, opts ...Option) *Late {
	return &Late{s: newState(fn, opts)}
}

// LateUpdate implements engine.LateUpdater.
func (l *Late) LateUpdate(data engine.UpdateData) {
	l.s.advance(data)
}

// Advance moves the invoker forward by elapsed outside of an engine and
// reports whether the function ran.
func (l *Late) Advance(elapsed time.Duration) bool {
	return l.s.advance(engine.UpdateData{ElapsedTime: elapsed})
}

// Remaining returns the time left until the next invocation.
func (l *Late) Remaining() time.Duration { return l.s.remaining }

// Executions returns how many times the function has run.
func (l *Late) Executions() int { return l.s.execution }

var (
	_ engine.Updater     = (*Repeated)(nil)
	_ engine.LateUpdater = (*Late)(nil)
)
