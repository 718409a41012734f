package host

import (
	"sync"
	"time"

	"github.com/go-hoist/hoist/pkg/errors"
)

// ScheduleFunc defers a zero-argument callback for later execution. Any
// deferral mechanism works: a frame timer, a task queue, or a manual drain
// in tests.
type ScheduleFunc func(callback func())

// DefaultFrameInterval approximates one display frame.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameScheduler returns a ScheduleFunc that fires each callback once after
// the given interval, standing in for a per-frame callback mechanism.
// Non-positive intervals fall back to DefaultFrameInterval.
func FrameScheduler(interval time.Duration) ScheduleFunc {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return func(callback func()) {
		time.AfterFunc(interval, callback)
	}
}

// ManualScheduler queues callbacks for explicit draining. Tests use it to
// control exactly when deferred detection passes run.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// Schedule queues callback for the next Drain.
func (s *ManualScheduler) Schedule(callback func()) {
	s.mu.Lock()
	s.pending = append(s.pending, callback)
	s.mu.Unlock()
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Drain runs and clears every queued callback, in order, and returns how
// many ran. Callbacks queued during the drain run on the next Drain.
func (s *ManualScheduler) Drain() int {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, callback := range pending {
		callback()
	}
	return len(pending)
}

// MarkDirty signals that instance may need re-rendering. Signals within one
// dirty window coalesce: the first sets the flag and hands a bound detection
// closure to the runtime's scheduler, the rest are no-ops until a completed
// pass clears the flag again. The clearing pass is the next one to finish,
// not necessarily the scheduled one.
//
// Once handed to the scheduler the pass cannot be withdrawn; it may run
// after the view was destroyed, in which case its failure is reported to the
// error handler rather than raised.
func (rt *Runtime) MarkDirty(instance any) {
	rt.MarkDirtyWith(instance, nil)
}

// MarkDirtyWith is MarkDirty with an explicit scheduler for this signal.
// A nil schedule uses the runtime's scheduler.
func (rt *Runtime) MarkDirtyWith(instance any, schedule ScheduleFunc) {
	if schedule == nil {
		schedule = rt.schedule
	}
	if !rt.setDirty() {
		return
	}
	schedule(func() {
		if err := rt.DetectChanges(instance); err != nil {
			if e, ok := err.(*errors.Error); ok {
				errors.Report(e)
			}
		}
	})
}
