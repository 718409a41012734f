package host

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/go-hoist/hoist/pkg/errors"
	"github.com/go-hoist/hoist/pkg/surface"
)

// Runtime carries the state one component host needs: the current render
// context slot, the dirty flag, the instance side table, and the default
// collaborators. Use NewRuntime; the zero value is not usable.
type Runtime struct {
	current *RenderContext
	depth   int

	mu    sync.Mutex
	dirty bool
	nodes map[any]*hostNode

	factory  RendererFactory
	runner   ViewRunner
	schedule ScheduleFunc
}

// hostNode associates a native surface element with the render context bound
// to it and the component instance it hosts. One is created per bootstrap
// and lives for the component's lifetime.
type hostNode struct {
	native   any
	context  *RenderContext
	instance any
}

// NewRuntime creates a runtime using the given renderer factory. Passing nil
// installs the standard native-surface factory over a fresh empty document.
func NewRuntime(factory RendererFactory) *Runtime {
	if factory == nil {
		factory = NewSurfaceFactory(surface.NewDocument())
	}
	return &Runtime{
		nodes:    make(map[any]*hostNode),
		factory:  factory,
		runner:   noopRunner{},
		schedule: FrameScheduler(DefaultFrameInterval),
	}
}

// SetViewRunner replaces the view instruction interpreter that detection
// passes execute. Pass nil to restore the no-op runner.
func (rt *Runtime) SetViewRunner(runner ViewRunner) {
	if runner == nil {
		runner = noopRunner{}
	}
	rt.runner = runner
}

// SetScheduler replaces the scheduler MarkDirty hands deferred passes to.
// Pass nil to restore the default frame scheduler.
func (rt *Runtime) SetScheduler(schedule ScheduleFunc) {
	if schedule == nil {
		schedule = FrameScheduler(DefaultFrameInterval)
	}
	rt.schedule = schedule
}

// Dirty reports whether a detection pass has been scheduled but not yet run.
func (rt *Runtime) Dirty() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.dirty
}

// setDirty sets the dirty flag and reports whether it was previously clear.
func (rt *Runtime) setDirty() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.dirty {
		return false
	}
	rt.dirty = true
	return true
}

// clearDirty clears the dirty flag. Every completed detection pass calls
// this, whichever caller triggered the pass.
func (rt *Runtime) clearDirty() {
	rt.mu.Lock()
	rt.dirty = false
	rt.mu.Unlock()
}

// register records the instance-to-host back-reference in the side table.
func (rt *Runtime) register(instance any, node *hostNode) {
	if DebugMode {
		if instance == nil {
			panic("hoist: contract violation: component factory returned nil")
		}
		if !reflect.TypeOf(instance).Comparable() {
			panic(fmt.Sprintf(
				"hoist: contract violation: component factory returned a non-comparable %T; "+
					"return a pointer so the runtime can key its side table on instance identity",
				instance,
			))
		}
	}
	rt.mu.Lock()
	rt.nodes[instance] = node
	rt.mu.Unlock()
}

// lookup resolves instance's host node record through the side table.
func (rt *Runtime) lookup(op string, instance any) (*hostNode, error) {
	if instance == nil {
		return nil, &errors.Error{
			Op:   op,
			Kind: errors.KindNotAHostInstance,
			Err:  fmt.Errorf("instance is nil"),
		}
	}
	if !reflect.TypeOf(instance).Comparable() {
		return nil, &errors.Error{
			Op:   op,
			Kind: errors.KindNotAHostInstance,
			Err:  fmt.Errorf("instance type %T is not comparable", instance),
		}
	}

	rt.mu.Lock()
	node := rt.nodes[instance]
	rt.mu.Unlock()

	if node == nil {
		return nil, &errors.Error{
			Op:   op,
			Kind: errors.KindNotAHostInstance,
			Err:  fmt.Errorf("%T was not bootstrapped by this runtime", instance),
		}
	}
	if DebugMode {
		if node.context == nil || node.context.Node(rootElementIndex) == nil {
			panic("hoist: contract violation: host node record has no render data")
		}
	}
	return node, nil
}

// reportAndRepanic reports a recovered panic to the error handler, then
// re-raises it so propagation semantics are unchanged.
func reportAndRepanic(op string) {
	if r := recover(); r != nil {
		errors.ReportPanic(&errors.PanicError{
			Op:         op,
			Value:      r,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		})
		panic(r)
	}
}
