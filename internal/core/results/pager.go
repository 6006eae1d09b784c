package results

import (
	"context"
	"sync"

	perr "roamly/internal/platform/errors"

	"roamly/internal/core/listing"
)

// DefaultPageSize matches the grid size the product has always fetched
const DefaultPageSize = 12

// PageFetcher is the external listings-fetch collaborator. Pages are
// 1-based; an implementation returns the records for one page, at most
// pageSize of them
type PageFetcher interface {
	FetchPage(ctx context.Context, page, pageSize int) ([]listing.Listing, error)
}

// PagerState names the loader's state machine states
type PagerState string

const (
	// PagerIdle means no fetch is in flight
	PagerIdle PagerState = "idle"
	// PagerLoading means a fetch is in flight; further LoadNext calls no-op
	PagerLoading PagerState = "loading"
)

// Pager drives incremental loading of the canonical set. A short page
// (fewer than pageSize records) marks the end of the upstream result.
// Fetch failures are retryable and never disturb already-ingested data
type Pager struct {
	mu       sync.Mutex
	store    *Store
	fetch    PageFetcher
	pageSize int
	page     int
	hasMore  bool
	state    PagerState
	lastErr  error
	gen      uint64
}

// NewPager wraps store with a loader over fetch
func NewPager(store *Store, fetch PageFetcher, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{
		store:    store,
		fetch:    fetch,
		pageSize: pageSize,
		hasMore:  true,
		state:    PagerIdle,
	}
}

// LoadNext requests the next page and ingests the result. It is a no-op
// (false, nil) while a fetch is in flight or when the upstream is
// exhausted. The store lock is never held across the network call, so
// filter and sort edits stay synchronous during a fetch. A page that
// lands after Reset is discarded; even if a late page were ingested it
// could only overwrite by id, never duplicate
func (p *Pager) LoadNext(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.state == PagerLoading || !p.hasMore {
		p.mu.Unlock()
		return false, nil
	}
	p.state = PagerLoading
	p.lastErr = nil
	gen := p.gen
	next := p.page + 1
	size := p.pageSize
	p.mu.Unlock()

	batch, err := p.fetch.FetchPage(ctx, next, size)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PagerIdle
	if p.gen != gen {
		// scope was reset mid-flight; drop the stale page
		return false, nil
	}
	if err != nil {
		p.lastErr = perr.Wrapf(err, perr.ErrorCodeUnavailable, "listings fetch failed (page %d)", next)
		return false, p.lastErr
	}
	p.store.Ingest(batch)
	p.page = next
	p.hasMore = len(batch) == size
	return true, nil
}

// HasMore reports whether the upstream may have further pages
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Loading reports whether a fetch is in flight
func (p *Pager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == PagerLoading
}

// Page is the index of the last successfully loaded page, 0 before any
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// PageSize returns the configured page size
func (p *Pager) PageSize() int { return p.pageSize }

// Err returns the failure of the most recent attempt, nil after a success
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Reset rewinds pagination for a new upstream scope and invalidates any
// in-flight fetch
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.page = 0
	p.hasMore = true
	p.lastErr = nil
}
