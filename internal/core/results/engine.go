package results

import (
	"context"

	"roamly/internal/core/listing"
	"roamly/internal/core/query"
)

// Engine composes the store, the pager, and the favorites overlay for one
// browse session. All mutation of shared state passes through it; no
// consumer holds a mutable copy it writes back
type Engine struct {
	store *Store
	pager *Pager
	favs  *Favorites
}

// NewEngine builds an empty engine over fetch
func NewEngine(fetch PageFetcher, pageSize int) *Engine {
	s := NewStore()
	return &Engine{
		store: s,
		pager: NewPager(s, fetch, pageSize),
		favs:  NewFavorites(),
	}
}

// Store exposes the underlying store for projections and tests
func (e *Engine) Store() *Store { return e.store }

// Visible is the derived, ordered set currently eligible for display
func (e *Engine) Visible() []listing.Listing { return e.store.Visible() }

// SetFilter merges a partial criteria edit; never triggers a fetch
func (e *Engine) SetFilter(p query.Patch) error { return e.store.SetFilter(p) }

// ClearFilters restores the all-permissive criteria
func (e *Engine) ClearFilters() { e.store.ClearFilters() }

// SetSort switches the derived ordering
func (e *Engine) SetSort(k query.SortKey) error { return e.store.SetSort(k) }

// LoadNext fetches and ingests the next page, subject to the pager's
// no-op rules
func (e *Engine) LoadNext(ctx context.Context) (bool, error) { return e.pager.LoadNext(ctx) }

// HasMore reports whether further pages may exist upstream
func (e *Engine) HasMore() bool { return e.pager.HasMore() }

// Page is the index of the last successfully loaded page, 0 before any
func (e *Engine) Page() int { return e.pager.Page() }

// PageSize returns the configured page size
func (e *Engine) PageSize() int { return e.pager.PageSize() }

// Loading reports whether a fetch is in flight
func (e *Engine) Loading() bool { return e.pager.Loading() }

// ToggleFavorite flips the overlay mark for id and reports the new state
func (e *Engine) ToggleFavorite(id string) bool { return e.favs.Toggle(id) }

// IsFavorite reports the overlay mark for id
func (e *Engine) IsFavorite(id string) bool { return e.favs.Has(id) }

// Favorites exposes the overlay for preloading and listing
func (e *Engine) Favorites() *Favorites { return e.favs }

// ResetScope discards fetched data and rewinds pagination for a new
// upstream query scope. Criteria, sort, and favorites survive
func (e *Engine) ResetScope() {
	e.pager.Reset()
	e.store.Reset()
}
