package host

import (
	"fmt"

	"github.com/go-hoist/hoist/pkg/errors"
)

// Definition is the immutable descriptor of a component kind. The runtime
// only reads it; ownership stays with whoever declares the component.
type Definition struct {
	// Tag is the lookup tag used to resolve a default host element.
	Tag string
	// Factory produces a fresh component instance. The returned value must
	// be comparable so the runtime can key its side table on instance
	// identity; returning a pointer is the usual choice.
	Factory func() any
	// RendererKind selects the renderer implementation. Empty means
	// KindSurface.
	RendererKind RendererKind
}

// Feature is a post-construction hook applied to a freshly built instance,
// used for cross-cutting setup such as attribute reflection.
type Feature func(instance any, def Definition)

// BootstrapOptions configures a single Bootstrap call. The zero value uses
// the runtime's renderer factory, the definition tag as the host lookup, the
// null injector, and no features.
type BootstrapOptions struct {
	// RendererFactory overrides the runtime's renderer factory.
	RendererFactory RendererFactory
	// Host is the native element or lookup tag to mount onto. Nil derives
	// the host from the definition tag.
	Host any
	// Injector is the dependency resolver bound to the view by BootstrapRef.
	Injector Injector
	// Features are applied to the instance in order, after construction and
	// before the first detection pass.
	Features []Feature
}

// Bootstrap instantiates def against a host surface and returns the
// component instance.
//
// The host is resolved first; a fresh render context bound to it is then
// entered for the construction block and left again on both the success and
// the failure path, so the context stack always returns to its prior depth
// even when the factory panics. Feature hooks run next, and finally one
// detection pass renders the component's initial state.
func (rt *Runtime) Bootstrap(def Definition, opts BootstrapOptions) (any, error) {
	const op = "host.Bootstrap"

	if def.Factory == nil {
		return nil, &errors.Error{
			Op:   op,
			Kind: errors.KindConfig,
			Tag:  def.Tag,
			Err:  fmt.Errorf("definition has no factory"),
		}
	}

	factory := opts.RendererFactory
	if factory == nil {
		factory = rt.factory
	}
	hostRef := opts.Host
	if hostRef == nil {
		hostRef = def.Tag
	}
	kind := def.RendererKind
	if kind == "" {
		kind = KindSurface
	}

	native, err := locateHost(factory, kind, hostRef, def.Tag)
	if err != nil {
		return nil, err
	}

	renderer := factory.CreateRenderer(native, kind)
	ctx := newRenderContext(renderer)

	var instance any
	func() {
		prev := rt.Enter(ctx)
		defer rt.Leave(prev)
		defer reportAndRepanic(op)

		ctx.setNode(rootElementIndex, native)
		instance = def.Factory()
		ctx.setNode(instanceIndex, instance)
		rt.register(instance, &hostNode{native: native, context: ctx, instance: instance})
	}()

	for _, feature := range opts.Features {
		if feature != nil {
			feature(instance, def)
		}
	}

	if err := rt.DetectChanges(instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// BootstrapRef bootstraps def and wraps the produced instance in a ViewRef
// exposing the change-detection control surface and the destroy lifecycle.
// Without an injector in opts the view gets the null injector, which fails
// every lookup.
func (rt *Runtime) BootstrapRef(def Definition, opts BootstrapOptions) (*ViewRef, error) {
	instance, err := rt.Bootstrap(def, opts)
	if err != nil {
		return nil, err
	}

	injector := opts.Injector
	if injector == nil {
		injector = NullInjector{}
	}
	native, err := rt.HostElement(instance)
	if err != nil {
		return nil, err
	}
	return &ViewRef{
		runtime:  rt,
		context:  instance,
		location: native,
		injector: injector,
	}, nil
}
