// Package bci holds the integration points for the external flash-stimulus
// controller and the EEG acquisition device. Both collaborators live outside
// this repository; this package only defines the registration and lifecycle
// call shapes and deliberately specifies no wire protocol.
package bci

import "sync"

// Stimulus describes one flash target registered for the external ERP
// controller: an identifier, the visual target it flashes against, its two
// display states, and whether the controller may rotate the visual.
type Stimulus struct {
	ID       int
	Target   string
	OnState  string
	OffState string
	Rotate   bool
}

// Registry is the externally owned list the game registers stimuli into.
// Registration is one-way: the controller reads, the game writes. The
// controller polls from outside the game loop, so access is guarded.
type Registry struct {
	mu   sync.Mutex
	list []Stimulus
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a stimulus descriptor for the current round.
func (r *Registry) Add(s Stimulus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, s)
}

// Reset discards all registered stimuli. Called at the start of each round.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = r.list[:0]
}

// Snapshot returns a copy of the registered stimuli in registration order.
func (r *Registry) Snapshot() []Stimulus {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Stimulus, len(r.list))
	copy(out, r.list)
	return out
}

// Len returns the number of registered stimuli.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.list)
}
