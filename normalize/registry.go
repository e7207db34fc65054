package normalize

import (
	"slices"
	"sync"

	"github.com/kbukum/voicerouter/transcription"
)

// Registry holds one mapper per provider.
type Registry struct {
	mu      sync.RWMutex
	mappers map[transcription.Provider]transcription.Mapper
}

// NewRegistry creates a registry pre-populated with mappers.
func NewRegistry(mappers ...transcription.Mapper) *Registry {
	r := &Registry{mappers: make(map[transcription.Provider]transcription.Mapper, len(mappers))}
	for _, m := range mappers {
		r.Register(m)
	}
	return r
}

// Register adds or replaces the mapper for m.Provider().
func (r *Registry) Register(m transcription.Mapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappers[m.Provider()] = m
}

// Get returns the mapper for p. Provider aliases are resolved.
func (r *Registry) Get(p transcription.Provider) (transcription.Mapper, bool) {
	if canonical, err := transcription.ParseProvider(string(p)); err == nil {
		p = canonical
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mappers[p]
	return m, ok
}

// List returns the registered providers, sorted.
func (r *Registry) List() []transcription.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]transcription.Provider, 0, len(r.mappers))
	for p := range r.mappers {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
