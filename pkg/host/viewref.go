package host

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-hoist/hoist/pkg/errors"
)

// ViewRef is the reference handed to the embedding application for one
// bootstrapped component: the change-detection control surface plus the
// destroy lifecycle.
type ViewRef struct {
	runtime  *Runtime
	context  any
	location any
	injector Injector

	mu               sync.Mutex
	destroyed        bool
	destroyCallbacks []func()
}

// Context returns the component instance.
func (v *ViewRef) Context() any {
	return v.context
}

// Location returns the native element hosting the component.
func (v *ViewRef) Location() any {
	return v.location
}

// Injector returns the dependency resolver bound to this view.
func (v *ViewRef) Injector() Injector {
	return v.injector
}

// DetectChanges runs one synchronous detection pass for this view.
func (v *ViewRef) DetectChanges() error {
	return v.runtime.DetectChanges(v.context)
}

// Destroyed reports whether Destroy has been called at least once.
func (v *ViewRef) Destroyed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.destroyed
}

// OnDestroy registers a teardown callback. Callbacks run in registration
// order when Destroy is called. Registration after destruction is kept but
// never fires retroactively; such a callback only runs if Destroy is called
// again.
func (v *ViewRef) OnDestroy(callback func()) {
	if callback == nil {
		return
	}
	v.mu.Lock()
	v.destroyCallbacks = append(v.destroyCallbacks, callback)
	v.mu.Unlock()
}

// Destroy invokes every registered callback once, in registration order,
// then marks the view destroyed. Only the destroyed flag is idempotent:
// calling Destroy again re-invokes all callbacks. Callers that need
// run-once teardown must guard their callbacks themselves.
func (v *ViewRef) Destroy() {
	v.mu.Lock()
	callbacks := slices.Clone(v.destroyCallbacks)
	v.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}

	v.mu.Lock()
	v.destroyed = true
	v.mu.Unlock()
}

// The remaining control points are not implemented by this runtime. Each
// fails with a not-implemented error so callers detect the unsupported
// operation instead of assuming success.

// MarkForCheck is not implemented.
func (v *ViewRef) MarkForCheck() error {
	return v.notImplemented("MarkForCheck")
}

// Detach is not implemented.
func (v *ViewRef) Detach() error {
	return v.notImplemented("Detach")
}

// CheckNoChanges is not implemented.
func (v *ViewRef) CheckNoChanges() error {
	return v.notImplemented("CheckNoChanges")
}

// Reattach is not implemented.
func (v *ViewRef) Reattach() error {
	return v.notImplemented("Reattach")
}

func (v *ViewRef) notImplemented(name string) error {
	return &errors.Error{
		Op:   "host.ViewRef." + name,
		Kind: errors.KindNotImplemented,
		Err:  fmt.Errorf("control point not implemented by this runtime"),
	}
}
