package runtime

import (
	"slices"
	"sync"
	"udp-chat/domain"
)

// History is the append-only transcript shared by the receiver and the renderer.
// Entries are never evicted.
type History struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(entry domain.Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
}

// Snapshot returns a copy of all entries, oldest first.
func (h *History) Snapshot() []domain.Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.entries)
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
