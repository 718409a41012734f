package host

import "github.com/go-hoist/hoist/pkg/errors"

// locateHost resolves the native element a component mounts onto. hostOrTag
// is either a concrete element handle or a lookup tag; resolution goes
// through a renderer created for the component's renderer kind.
func locateHost(factory RendererFactory, kind RendererKind, hostOrTag any, tag string) (any, error) {
	renderer := factory.CreateRenderer(nil, kind)
	element, err := renderer.SelectRoot(hostOrTag)
	if err != nil {
		return nil, &errors.Error{
			Op:   "host.locateHost",
			Kind: errors.KindHostResolution,
			Tag:  tag,
			Err:  err,
		}
	}
	return element, nil
}
