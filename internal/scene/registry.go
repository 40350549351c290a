package scene

import "sync"

// Registry is the append-only ordered collection of committed
// placements. Add is the only mutator; placements are never removed or
// reordered. The driver goroutine appends while the HTTP surface reads,
// so access is guarded by an RWMutex.
type Registry struct {
	mu         sync.RWMutex
	placements []Placement
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a committed placement.
func (r *Registry) Add(p Placement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placements = append(r.placements, p)
}

// Snapshot returns a copy of the current placements in commit order.
func (r *Registry) Snapshot() []Placement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Placement, len(r.placements))
	copy(out, r.placements)
	return out
}

// Len returns the number of committed placements.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.placements)
}
