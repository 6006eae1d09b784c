package results

import (
	"sort"
	"sync"
)

// Favorites is the overlay of listing ids the user has marked. It is not
// derived from the canonical set: a favorite survives the listing leaving
// the visible set, a filter change, or a scope reset. Rendering consults
// it by id lookup only
type Favorites struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewFavorites returns an empty overlay
func NewFavorites() *Favorites {
	return &Favorites{ids: map[string]struct{}{}}
}

// Toggle flips membership for id and reports the new state. Toggling
// twice restores the original membership
func (f *Favorites) Toggle(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

// Has reports membership for id
func (f *Favorites) Has(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.ids[id]
	return ok
}

// IDs returns the marked ids in lexicographic order
func (f *Favorites) IDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len is the overlay size
func (f *Favorites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.ids)
}

// Load seeds the overlay, typically from durable storage when a session
// resumes. Existing marks are kept
func (f *Favorites) Load(ids []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		if id != "" {
			f.ids[id] = struct{}{}
		}
	}
}
