// Package host implements the component host runtime: it bootstraps a
// component onto a native surface, tracks which render context is current
// across nested construction and update passes, and drives change detection
// both synchronously and through a coalesced dirty scheduler.
//
// # Core Types
//
// Definition is an immutable description of a component kind: a lookup tag,
// a factory producing fresh instances, and a renderer kind.
//
// Runtime carries all host state. Nothing in this package is process-global,
// so independent runtimes coexist and are testable in isolation.
//
// ViewRef is the reference returned to the embedding application. It exposes
// the change-detection control surface and the destroy lifecycle.
//
// # Bootstrapping
//
//	doc := surface.NewDocument()
//	doc.AppendChild(surface.NewElement("x-widget"))
//
//	rt := host.NewRuntime(host.NewSurfaceFactory(doc))
//	ref, err := rt.BootstrapRef(host.Definition{
//	    Tag:     "x-widget",
//	    Factory: func() any { return &counter{} },
//	}, host.BootstrapOptions{})
//
// # Change Detection
//
// ref.DetectChanges runs one pass immediately. Runtime.MarkDirty coalesces
// any number of signals within one dirty window into a single pass handed to
// the runtime's scheduler. Any completed pass clears the window, including
// one triggered manually.
//
// # Concurrency
//
// The runtime assumes a single logical thread of control. Only the dirty
// flag and the instance side table are guarded internally, because the
// scheduler boundary may deliver the deferred pass from a timer goroutine.
// Enter/Leave pairs must not be interleaved across goroutines.
package host
