package atlas

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/glyphterm/parameter"
)

// BuiltinMono is the id of the generated code page 437 Go Mono font
const BuiltinMono = parameter.DefaultFont

type registryEntry struct {
	font    *Font
	version uint64
}

// Registry is the indirection table terminals reference fonts through
// Replacing a font under an existing id bumps that id's version, which mesh consumers
// compare against their last build stamp
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
	// versions are drawn from one counter so a removed and re-added id never repeats a stamp
	next uint64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// NewDefaultRegistry creates a registry holding the built-in font
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	f, err := RenderFont(BuiltinMono, DefaultRenderOptions())
	if err != nil {
		return nil, fmt.Errorf("built-in font: %w", err)
	}
	r.Register(BuiltinMono, f)
	return r, nil
}

// Register adds or replaces the font stored under id
func (r *Registry) Register(id string, f *Font) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		e = &registryEntry{}
		r.entries[id] = e
	}
	r.next++
	e.font = f
	e.version = r.next
}

// Get returns the font under id with its version
func (r *Registry) Get(id string) (*Font, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, 0, false
	}
	return e.font, e.version, true
}

// Remove deletes id, terminals bound to it stop rebuilding until it returns
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// IDs lists registered ids sorted
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
