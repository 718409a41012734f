package host

// ViewRunner executes the render/update walk for one host node. It is the
// external view instruction interpreter; the runtime owns only the call
// contract, not the walk itself.
type ViewRunner interface {
	Run(hostElement any, viewData []any, instance any)
}

// noopRunner is the default runner. It renders nothing, which is enough for
// embedders that drive their surface mutation from feature hooks or their
// own interpreter.
type noopRunner struct{}

func (noopRunner) Run(hostElement any, viewData []any, instance any) {}

// DetectChanges runs one synchronous render/update pass for instance.
//
// The instance's host node record is resolved through the back-reference
// side table; a value never bootstrapped by this runtime yields a
// not-a-host-instance error. The pass enters the node's render context,
// executes the view runner against the native element and render data, and
// on completion clears the dirty flag unconditionally: any finished pass
// satisfies every re-render request accumulated up to that point, whichever
// caller scheduled it.
func (rt *Runtime) DetectChanges(instance any) error {
	const op = "host.DetectChanges"

	node, err := rt.lookup(op, instance)
	if err != nil {
		return err
	}

	prev := rt.Enter(node.context)
	defer rt.Leave(prev)
	defer reportAndRepanic(op)

	rt.runner.Run(node.native, node.context.data, instance)
	rt.clearDirty()
	return nil
}

// HostElement returns the native element instance was bootstrapped onto.
// It fails the same way DetectChanges does for values the runtime has never
// seen.
func (rt *Runtime) HostElement(instance any) (any, error) {
	node, err := rt.lookup("host.HostElement", instance)
	if err != nil {
		return nil, err
	}
	return node.native, nil
}
