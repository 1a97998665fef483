package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/khristoforovs/arshin/registry"
)

//go:embed default.units
var defaultCatalog string

// Default registry instance and initialization guard.
var (
	defaultRegistry *registry.Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry built from the bundled default
// catalog. It is parsed once, lazily, and must be treated as read-only
// thereafter. A malformed bundled catalog is unrecoverable and panics:
// failing fast beats operating with a partially populated implicit
// catalog.
func Default() *registry.Registry {
	defaultOnce.Do(func() {
		r, err := Parse(defaultCatalog)
		if err != nil {
			panic(fmt.Sprintf("catalog: bundled default catalog is invalid: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
