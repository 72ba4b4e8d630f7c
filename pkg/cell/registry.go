package cell

import (
	"slices"
	"sync"
)

// Descriptor pairs a widget type name with its constructor.
type Descriptor struct {
	Name string
	New  Constructor
}

// Registry maps widget type names to constructors. Registration is
// first-write-wins: once a name is bound, later bindings for the same name
// are ignored, so load order decides which constructor serves a name.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]Constructor)}
}

// Register binds name to ctor. If the name is already bound the call is a
// no-op. Empty names and nil constructors are ignored.
func (r *Registry) Register(name string, ctor Constructor) {
	if name == "" || ctor == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.widgets[name]; exists {
		return
	}
	r.widgets[name] = ctor
}

// RegisterAll binds every descriptor in order, with the same first-write-wins
// behavior as Register.
func (r *Registry) RegisterAll(descs ...Descriptor) {
	for _, d := range descs {
		r.Register(d.Name, d.New)
	}
}

// Resolve returns the constructor bound to name.
func (r *Registry) Resolve(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.widgets[name]
	return ctor, ok
}

// Has reports whether name is bound.
func (r *Registry) Has(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// Names returns every bound widget type name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
