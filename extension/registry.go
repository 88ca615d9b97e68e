// registry.go holds the explicit registration list that replaces runtime
// discovery: every capability the MCP server exposes traces back to a
// Register call in some extension's init(), so the full capability set is
// readable from the extension/all imports alone.
//
// Registration order is preserved - commands and capabilities appear to the
// host in the order their packages are imported, deterministically across
// runs.

package extension

import "sync"

// Registry holds all registered extensions.
var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string // preserve registration order
)

// Register adds an extension to the registry, panicking on a duplicate name.
// Called from init() functions, before main() runs - a duplicate there is a
// programmer mistake, not a runtime condition, and panicking keeps init()
// bodies free of error handling. Same contract as database/sql.Register.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Get returns a specific extension by name, or nil if not found.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered extensions.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}
