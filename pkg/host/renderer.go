package host

import (
	"fmt"

	"github.com/go-hoist/hoist/pkg/surface"
)

// RendererKind selects which renderer implementation hosts a component.
type RendererKind string

// KindSurface is the standard in-memory native-surface renderer.
const KindSurface RendererKind = "surface"

// Renderer provides the primitives the runtime and its collaborators use to
// create and mutate native surface elements. Element handles are opaque to
// the runtime; only the renderer that produced them interprets them.
type Renderer interface {
	// CreateElement creates a detached native element with the given tag.
	CreateElement(tag string) any
	// AppendChild attaches child under parent.
	AppendChild(parent, child any)
	// SetAttribute sets an attribute on a native element.
	SetAttribute(element any, name, value string)
	// SelectRoot resolves a host reference: a native element is passed
	// through unchanged, a tag string is looked up on the surface.
	SelectRoot(hostOrTag any) (any, error)
}

// RendererFactory produces a Renderer bound to a host element. It is
// supplied by the embedding application; NewSurfaceFactory is the default.
type RendererFactory interface {
	CreateRenderer(hostElement any, kind RendererKind) Renderer
}

// NewSurfaceFactory returns the standard native-surface RendererFactory
// rendering onto doc. A nil doc gets a fresh empty document.
func NewSurfaceFactory(doc *surface.Element) RendererFactory {
	if doc == nil {
		doc = surface.NewDocument()
	}
	return surfaceFactory{doc: doc}
}

type surfaceFactory struct {
	doc *surface.Element
}

func (f surfaceFactory) CreateRenderer(hostElement any, kind RendererKind) Renderer {
	return surfaceRenderer{doc: f.doc}
}

// surfaceRenderer renders onto the in-memory surface tree.
type surfaceRenderer struct {
	doc *surface.Element
}

func (r surfaceRenderer) CreateElement(tag string) any {
	return surface.NewElement(tag)
}

func (r surfaceRenderer) AppendChild(parent, child any) {
	p, ok := parent.(*surface.Element)
	if !ok {
		return
	}
	if c, ok := child.(*surface.Element); ok {
		p.AppendChild(c)
	}
}

func (r surfaceRenderer) SetAttribute(element any, name, value string) {
	if e, ok := element.(*surface.Element); ok {
		e.SetAttribute(name, value)
	}
}

func (r surfaceRenderer) SelectRoot(hostOrTag any) (any, error) {
	switch h := hostOrTag.(type) {
	case *surface.Element:
		return h, nil
	case string:
		if el := r.doc.QuerySelector(h); el != nil {
			return el, nil
		}
		return nil, fmt.Errorf("no element matches tag %q", h)
	case nil:
		return nil, fmt.Errorf("no host reference given")
	default:
		return nil, fmt.Errorf("unsupported host reference %T", hostOrTag)
	}
}
