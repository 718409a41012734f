package host

// RenderContext is the target construction and update operations act on: a
// renderer bound to one host element plus the ordered per-node render data
// for that element's view.
type RenderContext struct {
	renderer Renderer
	data     []any

	// prev is recorded on Enter so Leave can verify strict nesting.
	prev    *RenderContext
	entered bool
}

// Render data layout within a root context. The root native element occupies
// slot 0, the component instance slot 1.
const (
	rootElementIndex = 0
	instanceIndex    = 1
)

func newRenderContext(renderer Renderer) *RenderContext {
	return &RenderContext{renderer: renderer}
}

// Renderer returns the renderer bound to this context.
func (c *RenderContext) Renderer() Renderer {
	return c.renderer
}

// Node returns the render data entry at index i, or nil if unset.
func (c *RenderContext) Node(i int) any {
	if i < 0 || i >= len(c.data) {
		return nil
	}
	return c.data[i]
}

func (c *RenderContext) setNode(i int, value any) {
	for len(c.data) <= i {
		c.data = append(c.data, nil)
	}
	c.data[i] = value
}

// Enter makes ctx the current render context and returns the previously
// current one, which may be nil on first entry. Callers must hand the
// returned value to the matching Leave.
func (rt *Runtime) Enter(ctx *RenderContext) *RenderContext {
	prev := rt.current
	if ctx != nil {
		ctx.prev = prev
		ctx.entered = true
	}
	rt.current = ctx
	rt.depth++
	return prev
}

// Leave restores prev as the current render context. Pair every Leave with
// the Enter that produced prev, usually via defer so the context unwinds on
// both the success and the failure path. Leaving out of order is a
// programming error; with DebugMode on it panics instead of silently
// corrupting the current-context slot.
func (rt *Runtime) Leave(prev *RenderContext) {
	if DebugMode {
		if cur := rt.current; cur != nil && cur.entered && cur.prev != prev {
			panic("hoist: contract violation: Leave must receive the context returned by the matching Enter")
		}
	}
	if cur := rt.current; cur != nil {
		cur.entered = false
		cur.prev = nil
	}
	rt.current = prev
	rt.depth--
}
