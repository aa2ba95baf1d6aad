package structure

import (
	"cmp"
	"slices"
	"strings"
	"sync"
)

// Registry holds structure handlers keyed by name.
// Lookups are case-insensitive.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	aliases  map[string]string // alias -> canonical name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		aliases:  make(map[string]string),
	}
}

// Register adds a handler to the registry.
// If a handler with the same name already exists, it is replaced.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[normalizeName(h.Name())] = h
}

// RegisterAlias maps an alias to a canonical structure name.
func (r *Registry) RegisterAlias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[normalizeName(alias)] = normalizeName(name)
}

// Get retrieves a handler by its canonical name only.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[normalizeName(name)]
	return h, ok
}

// Resolve returns the canonical name and handler for a structure name or alias.
// Returns (name, handler, found).
func (r *Registry) Resolve(key string) (string, Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key = normalizeName(key)
	if h, ok := r.handlers[key]; ok {
		return h.Name(), h, true
	}
	if target, ok := r.aliases[key]; ok {
		if h, ok := r.handlers[target]; ok {
			return h.Name(), h, true
		}
	}
	return "", nil, false
}

// Handlers returns all registered handlers sorted by name.
func (r *Registry) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Handler, 0, len(r.handlers))
	for _, h := range r.handlers {
		result = append(result, h)
	}

	slices.SortFunc(result, func(a, b Handler) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return result
}

// Aliases returns the sorted aliases that resolve to name.
func (r *Registry) Aliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = normalizeName(name)
	var result []string
	for alias, target := range r.aliases {
		if target == name {
			result = append(result, alias)
		}
	}

	slices.Sort(result)
	return result
}

// Names returns all canonical handler names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		result = append(result, name)
	}

	slices.Sort(result)
	return result
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultRegistry is the global registry for built-in structures.
// Built-ins register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for structure registration
var DefaultRegistry = NewRegistry()
