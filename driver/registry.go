package driver

import (
	"fmt"
	"sort"
	"sync"
)

// Registry tracks installed binding drivers and which bindings have
// already initialized their native core in this process.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Driver
	loaded  map[string]bool
}

// NewRegistry creates a new empty Registry. Production code uses the
// process-wide Default registry; tests construct their own.
func NewRegistry() *Registry {
	return &Registry{
		drivers: make(map[string]Driver),
		loaded:  make(map[string]bool),
	}
}

// Register adds a driver under its canonical name. Registering a nil
// driver or the same name twice panics; registration happens from init
// functions where a conflict is a programmer error.
func (r *Registry) Register(d Driver) {
	if d == nil {
		panic("driver: Register driver is nil")
	}
	name := d.Name()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.drivers[name]; dup {
		panic(fmt.Sprintf("driver: Register called twice for driver %q", name))
	}
	r.drivers[name] = d
}

// Lookup returns the driver registered under name.
func (r *Registry) Lookup(name string) (Driver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drivers[name]
	return d, ok
}

// Installed reports whether a driver is registered under name.
func (r *Registry) Installed(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Drivers returns the sorted names of all registered drivers.
func (r *Registry) Drivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarkLoaded records that the named binding's native core has been
// initialized in this process. Host applications embedding a toolkit
// directly call this before qtkit resolution so the already-active
// binding wins.
func (r *Registry) MarkLoaded(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded[name] = true
}

// Loaded reports whether the named binding has been marked loaded.
func (r *Registry) Loaded(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded[name]
}

// defaultRegistry is the process-wide registry used by package-level
// functions and, by default, by qtkit resolution.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a driver to the process-wide registry.
func Register(d Driver) { defaultRegistry.Register(d) }

// MarkLoaded marks a binding loaded in the process-wide registry.
func MarkLoaded(name string) { defaultRegistry.MarkLoaded(name) }
