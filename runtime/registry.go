package runtime

import (
	"net/netip"
	"slices"
	"sync"
	"udp-chat/domain"
)

// Registry is the ordered list of peers every line is broadcast to.
// Written by the session only, read by the session and by broadcasts.
// Duplicates are kept and nothing is ever removed.
type Registry struct {
	mu           sync.RWMutex
	destinations []netip.AddrPort
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add parses the /add arguments and appends the destination.
// On a parse error the registry is left untouched.
func (r *Registry) Add(args []string) error {
	destination, err := domain.ParseDestination(args)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.destinations = append(r.destinations, destination)
	return nil
}

// List returns a snapshot in insertion order.
func (r *Registry) List() []netip.AddrPort {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.destinations)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.destinations)
}
