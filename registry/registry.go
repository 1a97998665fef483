// Package registry stores units under unique names. A registry is built by
// the catalog parser or populated incrementally; entries are only ever
// added, never replaced or removed, so a fully built registry can be shared
// read-only across call sites.
package registry

import (
	"fmt"
	"sync"

	"github.com/khristoforovs/arshin/unit"
)

// Registry is a name-keyed unit store. The zero value is not usable; call
// New. Reads may run concurrently; registration takes the write lock.
type Registry struct {
	mu    sync.RWMutex
	units map[string]unit.Unit
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{units: make(map[string]unit.Unit)}
}

// Register inserts a unit. It fails with DuplicateUnitError if a unit of
// that name already exists; there is no replace operation.
func (r *Registry) Register(u unit.Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := u.Name()
	if _, ok := r.units[name]; ok {
		return &DuplicateUnitError{Name: name}
	}
	r.units[name] = u
	return nil
}

// Get looks up a unit by name.
func (r *Registry) Get(name string) (unit.Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.units[name]
	return u, ok
}

// MustGet looks up a unit by name and panics when it is absent. Intended
// for hand-built or bundled catalogs whose contents are known.
func (r *Registry) MustGet(name string) unit.Unit {
	u, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("registry: unit %q not registered", name))
	}
	return u
}

// Contains reports whether a unit of that name is registered.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.units[name]
	return ok
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.units)
}

// UnitNames returns the registered names in no particular order.
func (r *Registry) UnitNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	return names
}
