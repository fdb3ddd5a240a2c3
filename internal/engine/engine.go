// Package engine implements the host update loop that drives components once
// per cycle, in a primary phase followed by a late phase.
package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/tylerbonnell/brigsby/internal/config"
)

// ErrNotComponent is returned by Add for values that implement neither
// Updater nor LateUpdater.
var ErrNotComponent = errors.New("engine: value is not a component")

// ErrNotComparable is returned by Add for components whose dynamic type cannot
// be compared, such as func or slice types. Remove finds components by
// identity, so attach pointers.
var ErrNotComparable = errors.New("engine: component is not comparable")

// UpdateData is the per-cycle context handed to every component.
type UpdateData struct {
	// ElapsedTime is the time since the previous cycle.
	ElapsedTime time.Duration
	// Tick is the 1-based cycle number.
	Tick uint64
	// Now is the time the cycle started.
	Now time.Time
}

// Updater runs during the primary phase of a cycle.
type Updater interface {
	Update(data UpdateData)
}

// LateUpdater runs during the late phase, after every Updater of the same
// cycle has run.
type LateUpdater interface {
	LateUpdate(data UpdateData)
}

// Engine drives attached components. It is not safe for concurrent use; all
// calls must come from the goroutine running Run or Step.
type Engine struct {
	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time

	components []any
	count      uint64
}

// New creates a new Engine.
func New(cfg *config.Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Add attaches a component. Components run in the order they were added.
// c must be comparable, typically a pointer, so that Remove can find it.
func (e *Engine) Add(c any) error {
	_, primary := c.(Updater)
	_, late := c.(LateUpdater)
	if !primary && !late {
		return fmt.Errorf("%w: %T", ErrNotComponent, c)
	}
	if !reflect.TypeOf(c).Comparable() {
		return fmt.Errorf("%w: %T", ErrNotComparable, c)
	}

	e.components = append(e.components, c)
	e.logger.Debug("component attached",
		zap.String("type", fmt.Sprintf("%T", c)),
		zap.Bool("primary", primary),
		zap.Bool("late", late),
	)
	return nil
}

// Remove detaches c. It reports whether c was attached.
func (e *Engine) Remove(c any) bool {
	if c == nil || !reflect.TypeOf(c).Comparable() {
		return false
	}
	for i, existing := range e.components {
		if existing == c {
			e.components = append(e.components[:i], e.components[i+1:]...)
			return true
		}
	}
	return false
}

// Components returns the number of attached components.
func (e *Engine) Components() int {
	return len(e.components)
}

// Count returns the number of cycles run so far.
func (e *Engine) Count() uint64 {
	return e.count
}

// Step runs one cycle with the given elapsed time.
func (e *Engine) Step(elapsed time.Duration) {
	e.count++
	data := UpdateData{
		ElapsedTime: elapsed,
		Tick:        e.count,
		Now:         e.now(),
	}

	// Components may detach themselves mid-cycle, so iterate over a snapshot.
	snapshot := make([]any, len(e.components))
	copy(snapshot, e.components)

	for _, c := range snapshot {
		if u, ok := c.(Updater); ok {
			u.Update(data)
		}
	}
	for _, c := range snapshot {
		if u, ok := c.(LateUpdater); ok {
			u.LateUpdate(data)
		}
	}
}

// Run drives the engine at the configured tick interval, blocking until ctx
// is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	e.logger.Info("engine started",
		zap.Duration("tick_interval", e.cfg.TickInterval),
		zap.Int("components", len(e.components)),
	)

	last := e.now()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped", zap.Uint64("total_ticks", e.count))
			return
		case <-ticker.C:
			now := e.now()
			e.Step(now.Sub(last))
			last = now
		}
	}
}
