// Package results implements the listings result engine: a canonical
// in-memory collection plus the derived, filtered-and-sorted visible set,
// incremental page loading, and the favorites overlay
package results

import (
	"sync"
	"time"

	perr "roamly/internal/platform/errors"

	"roamly/internal/core/listing"
	"roamly/internal/core/query"
)

// Store is the single source of truth for the canonical (unfiltered)
// collection and the active criteria and sort key. The visible set is
// derived lazily and cached until the next mutation. Safe for concurrent
// use; mutations never block on I/O
type Store struct {
	mu      sync.RWMutex
	byID    map[string]int
	order   []listing.Listing
	crit    query.Criteria
	sortKey query.SortKey
	dropped int

	visible []listing.Listing
	dirty   bool

	now func() time.Time // seam for the newest-sort anchor
}

// NewStore returns an empty store with the all-permissive criteria and the
// recommended ordering
func NewStore() *Store {
	return &Store{
		byID:    map[string]int{},
		sortKey: query.SortRecommended,
		now:     time.Now,
	}
}

// Ingest appends records unique by id; a duplicate id overwrites the
// earlier record in place (last write wins) instead of duplicating it.
// Records without an id are dropped and counted, never stored; the count
// accumulates across calls and is reported by Dropped
func (s *Store) Ingest(batch []listing.Listing) (added, updated, dropped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range batch {
		l := batch[i]
		if l.ID == "" {
			dropped++
			continue
		}
		l.Normalize()
		if at, ok := s.byID[l.ID]; ok {
			s.order[at] = l
			updated++
			continue
		}
		s.byID[l.ID] = len(s.order)
		s.order = append(s.order, l)
		added++
	}
	s.dropped += dropped
	if added > 0 || updated > 0 {
		s.dirty = true
	}
	return added, updated, dropped
}

// SetFilter merges a partial edit into the current criteria. Canonical
// data and pagination are untouched; only the derived set is invalidated
func (s *Store) SetFilter(p query.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := p.Apply(s.crit)
	if err := merged.Validate(); err != nil {
		return err
	}
	s.crit = merged
	s.dirty = true
	return nil
}

// ClearFilters restores the all-permissive criteria
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crit = query.Criteria{}
	s.dirty = true
}

// SetSort switches the ordering of the derived set
func (s *Store) SetSort(k query.SortKey) error {
	if !k.Valid() {
		return perr.InvalidArgf("unknown sort key %q", string(k))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = k
	s.dirty = true
	return nil
}

// Visible returns the filtered, sorted view of the canonical set. The
// result is recomputed only when a mutation happened since the last read,
// and is always consistent with the latest Ingest/SetFilter/SetSort.
// Callers must not mutate the returned slice
func (s *Store) Visible() []listing.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty {
		v := query.Filter(s.crit, s.order)
		query.Sort(v, s.sortKey, s.now())
		s.visible = v
		s.dirty = false
	}
	return s.visible
}

// Get looks a listing up by id in the canonical set
func (s *Store) Get(id string) (listing.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if at, ok := s.byID[id]; ok {
		return s.order[at], true
	}
	return listing.Listing{}, false
}

// Snapshot copies the canonical set in append order, for read-only
// consumers such as projections
func (s *Store) Snapshot() []listing.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]listing.Listing, len(s.order))
	copy(out, s.order)
	return out
}

// Len is the canonical set size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Criteria returns the active filter
func (s *Store) Criteria() query.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.crit
}

// SortKey returns the active ordering
func (s *Store) SortKey() query.SortKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortKey
}

// Dropped is the cumulative count of id-less records rejected by Ingest
func (s *Store) Dropped() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dropped
}

// Reset discards the canonical set for a new upstream query scope.
// Criteria and sort key survive: they are client-side state, not part of
// the upstream query
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = map[string]int{}
	s.order = nil
	s.visible = nil
	s.dirty = true
}
