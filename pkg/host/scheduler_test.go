package host

import (
	"testing"
	"time"
)

func bootstrapCounter(t *testing.T) (*Runtime, any, *recordingRunner) {
	t.Helper()
	rt, _, runner := newTestRuntime(t)
	instance, err := rt.Bootstrap(Definition{
		Tag:     "x-widget",
		Factory: func() any { return &counter{} },
	}, BootstrapOptions{})
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	return rt, instance, runner
}

func TestMarkDirty_CoalescesWithinWindow(t *testing.T) {
	rt, instance, runner := bootstrapCounter(t)
	sched := &ManualScheduler{}
	rt.SetScheduler(sched.Schedule)

	rt.MarkDirty(instance)
	rt.MarkDirty(instance)
	rt.MarkDirty(instance)

	if got := sched.Pending(); got != 1 {
		t.Fatalf("3 signals in one window should schedule exactly 1 callback, got %d", got)
	}

	passesBefore := len(runner.instances)
	if ran := sched.Drain(); ran != 1 {
		t.Fatalf("expected 1 drained callback, got %d", ran)
	}
	if got := len(runner.instances) - passesBefore; got != 1 {
		t.Errorf("drained callback should run exactly 1 pass, got %d", got)
	}
	if rt.Dirty() {
		t.Error("the scheduled pass should clear the dirty flag")
	}
}

func TestMarkDirty_NewWindowAfterPass(t *testing.T) {
	rt, instance, _ := bootstrapCounter(t)
	sched := &ManualScheduler{}
	rt.SetScheduler(sched.Schedule)

	rt.MarkDirty(instance)
	sched.Drain()

	rt.MarkDirty(instance)
	if got := sched.Pending(); got != 1 {
		t.Errorf("a signal after the window closed should schedule again, got %d pending", got)
	}
}

func TestMarkDirtyWith_ExplicitScheduler(t *testing.T) {
	rt, instance, runner := bootstrapCounter(t)

	var captured []func()
	schedule := func(callback func()) { captured = append(captured, callback) }

	rt.MarkDirtyWith(instance, schedule)
	rt.MarkDirtyWith(instance, schedule)

	if len(captured) != 1 {
		t.Fatalf("scheduler should receive exactly 1 callback, got %d", len(captured))
	}

	passesBefore := len(runner.instances)
	captured[0]()
	if got := len(runner.instances) - passesBefore; got != 1 {
		t.Errorf("captured callback should perform 1 detection pass, got %d", got)
	}
	if rt.Dirty() {
		t.Error("captured callback should clear the dirty flag")
	}
}

func TestMarkDirty_FrameSchedulerFires(t *testing.T) {
	rt, instance, runner := bootstrapCounter(t)
	rt.SetScheduler(FrameScheduler(time.Millisecond))

	passesBefore := len(runner.instances)
	rt.MarkDirty(instance)

	// The deferred pass clears the flag when it completes. Observing the
	// clear through the runtime's lock also orders the runner's append
	// before the reads below.
	deadline := time.Now().Add(time.Second)
	for rt.Dirty() {
		if time.Now().After(deadline) {
			t.Fatal("frame scheduler never delivered the detection pass")
		}
		time.Sleep(time.Millisecond)
	}
	if got := len(runner.instances) - passesBefore; got != 1 {
		t.Errorf("expected 1 deferred pass, got %d", got)
	}
}

func TestManualScheduler_DrainEmpty(t *testing.T) {
	sched := &ManualScheduler{}
	if ran := sched.Drain(); ran != 0 {
		t.Errorf("draining an empty scheduler should run nothing, got %d", ran)
	}
}
