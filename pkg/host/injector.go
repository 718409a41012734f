package host

import (
	"fmt"

	"github.com/go-hoist/hoist/pkg/errors"
)

// Injector resolves dependencies by token.
type Injector interface {
	// Get resolves token. If notFound is given, its first value is returned
	// for unknown tokens instead of an error.
	Get(token any, notFound ...any) (any, error)
}

// NullInjector fails every lookup. It is the deliberate placeholder used
// when BootstrapRef is called without an injector, not a real resolver.
type NullInjector struct{}

// Get returns the notFound fallback when given, otherwise a not-found error.
func (NullInjector) Get(token any, notFound ...any) (any, error) {
	if len(notFound) > 0 {
		return notFound[0], nil
	}
	return nil, &errors.Error{
		Op:   "host.NullInjector.Get",
		Kind: errors.KindNotFound,
		Err:  fmt.Errorf("no provider for token %v", token),
	}
}
