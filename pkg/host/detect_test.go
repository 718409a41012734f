package host

import (
	"testing"

	"github.com/go-hoist/hoist/pkg/errors"
)

func TestDetectChanges_NilInstance(t *testing.T) {
	rt, _, _ := newTestRuntime(t)

	if err := rt.DetectChanges(nil); !errors.IsKind(err, errors.KindNotAHostInstance) {
		t.Errorf("expected not-a-host-instance error, got %v", err)
	}
}

func TestDetectChanges_UnknownInstance(t *testing.T) {
	rt, _, _ := newTestRuntime(t)

	if err := rt.DetectChanges(&counter{}); !errors.IsKind(err, errors.KindNotAHostInstance) {
		t.Errorf("expected not-a-host-instance error, got %v", err)
	}
}

func TestDetectChanges_NonComparableInstance(t *testing.T) {
	rt, _, _ := newTestRuntime(t)

	if err := rt.DetectChanges([]int{1}); !errors.IsKind(err, errors.KindNotAHostInstance) {
		t.Errorf("expected not-a-host-instance error for a slice, got %v", err)
	}
}

func TestDetectChanges_RunsRunnerAgainstHostNode(t *testing.T) {
	rt, widget, runner := newTestRuntime(t)

	instance, err := rt.Bootstrap(Definition{
		Tag:     "x-widget",
		Factory: func() any { return &counter{} },
	}, BootstrapOptions{})
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if err := rt.DetectChanges(instance); err != nil {
		t.Fatalf("DetectChanges failed: %v", err)
	}

	// One pass from bootstrap, one manual.
	if len(runner.instances) != 2 {
		t.Fatalf("expected 2 detection passes, got %d", len(runner.instances))
	}
	if runner.hosts[1] != widget || runner.instances[1] != instance {
		t.Error("pass should target the instance's host node record")
	}
	if rt.depth != 0 || rt.current != nil {
		t.Error("detection must leave the context stack balanced")
	}
}

func TestDetectChanges_ClearsDirtyFlag(t *testing.T) {
	rt, _, _ := newTestRuntime(t)
	sched := &ManualScheduler{}
	rt.SetScheduler(sched.Schedule)

	instance, err := rt.Bootstrap(Definition{
		Tag:     "x-widget",
		Factory: func() any { return &counter{} },
	}, BootstrapOptions{})
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	rt.MarkDirty(instance)
	rt.MarkDirty(instance)
	if !rt.Dirty() {
		t.Fatal("MarkDirty should set the dirty flag")
	}

	// A manual pass clears the flag even though the scheduled pass has not
	// yet fired. That scheduled pass is consumed by this one.
	if err := rt.DetectChanges(instance); err != nil {
		t.Fatalf("DetectChanges failed: %v", err)
	}
	if rt.Dirty() {
		t.Error("any completed pass must clear the dirty flag")
	}
}

func TestDetectChanges_RunnerPanicReportedAndPropagated(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	rt, _, _ := newTestRuntime(t)

	instance, err := rt.Bootstrap(Definition{
		Tag:     "x-widget",
		Factory: func() any { return &counter{} },
	}, BootstrapOptions{})
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	rt.SetViewRunner(panickingRunner{})

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		rt.DetectChanges(instance)
	}()

	if recovered != "runner exploded" {
		t.Errorf("runner panic should propagate, got %v", recovered)
	}
	if rt.depth != 0 || rt.current != nil {
		t.Error("an aborted pass must still unwind the context stack")
	}
	if len(handler.panics) != 1 {
		t.Errorf("expected 1 reported panic, got %d", len(handler.panics))
	}
}

type panickingRunner struct{}

func (panickingRunner) Run(hostElement any, viewData []any, instance any) {
	panic("runner exploded")
}

func TestHostElement_UnknownInstance(t *testing.T) {
	rt, _, _ := newTestRuntime(t)

	if _, err := rt.HostElement(&counter{}); !errors.IsKind(err, errors.KindNotAHostInstance) {
		t.Errorf("expected not-a-host-instance error, got %v", err)
	}
}
