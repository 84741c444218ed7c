package bot

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateModule is returned when two modules share a name.
var ErrDuplicateModule = errors.New("duplicate module")

// Registry holds registered modules in registration order.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
	names   map[string]struct{}
}

// NewRegistry creates a new module registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make([]Module, 0),
		names:   make(map[string]struct{}),
	}
}

// Register adds a module to the registry. Module names must be unique.
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[m.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Name())
	}
	r.names[m.Name()] = struct{}{}
	r.modules = append(r.modules, m)
	return nil
}

// Modules returns a snapshot of all registered modules.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Module, len(r.modules))
	copy(result, r.modules)
	return result
}

// Global registry instance for module self-registration via init()
var globalRegistry = NewRegistry()

// Register adds a module to the global registry.
// It is called from module init() functions and panics on a duplicate name,
// since that can only be a programming error.
func Register(m Module) {
	if err := globalRegistry.Register(m); err != nil {
		panic(err)
	}
}

// Modules returns all modules from the global registry.
func Modules() []Module {
	return globalRegistry.Modules()
}

// ResetGlobalRegistry resets the global registry.
// This is intended for testing purposes only.
func ResetGlobalRegistry() {
	globalRegistry = NewRegistry()
}
