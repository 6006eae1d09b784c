package results

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"roamly/internal/core/listing"
)

// scriptFetcher serves pages from a fixed script and counts calls
type scriptFetcher struct {
	pages map[int][]listing.Listing
	errs  map[int]error
	calls int
}

func (f *scriptFetcher) FetchPage(_ context.Context, page, _ int) ([]listing.Listing, error) {
	f.calls++
	if err := f.errs[page]; err != nil {
		return nil, err
	}
	return f.pages[page], nil
}

func page(prefix string, n int) []listing.Listing {
	out := make([]listing.Listing, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, acc(fmt.Sprintf("%s-%d", prefix, i), float64(i)))
	}
	return out
}

func TestPager_FullThenShortThenExhausted(t *testing.T) {
	t.Parallel()

	fetch := &scriptFetcher{pages: map[int][]listing.Listing{
		1: page("p1", DefaultPageSize),
		2: page("p2", 5),
	}}
	s := NewStore()
	p := NewPager(s, fetch, DefaultPageSize)

	ok, err := p.LoadNext(context.Background())
	if !ok || err != nil {
		t.Fatalf("first page: ok=%v err=%v", ok, err)
	}
	if !p.HasMore() {
		t.Fatalf("a full page should leave hasMore true")
	}
	if s.Len() != DefaultPageSize {
		t.Fatalf("store holds %d, want %d", s.Len(), DefaultPageSize)
	}

	ok, err = p.LoadNext(context.Background())
	if !ok || err != nil {
		t.Fatalf("second page: ok=%v err=%v", ok, err)
	}
	if p.HasMore() {
		t.Fatalf("a short page should mark the upstream exhausted")
	}
	if s.Len() != DefaultPageSize+5 {
		t.Fatalf("store holds %d, want %d", s.Len(), DefaultPageSize+5)
	}

	// exhausted: no further fetch happens
	before := fetch.calls
	ok, err = p.LoadNext(context.Background())
	if ok || err != nil {
		t.Fatalf("exhausted LoadNext should no-op: ok=%v err=%v", ok, err)
	}
	if fetch.calls != before {
		t.Fatalf("exhausted LoadNext still hit the fetcher")
	}
}

func TestPager_PagesAreMonotonic(t *testing.T) {
	t.Parallel()

	fetch := &scriptFetcher{pages: map[int][]listing.Listing{
		1: page("p1", 3),
		2: page("p2", 3),
	}}
	p := NewPager(NewStore(), fetch, 3)

	if p.Page() != 0 {
		t.Fatalf("page before any load = %d", p.Page())
	}
	p.LoadNext(context.Background())
	if p.Page() != 1 {
		t.Fatalf("page after first load = %d", p.Page())
	}
	p.LoadNext(context.Background())
	if p.Page() != 2 {
		t.Fatalf("page after second load = %d", p.Page())
	}
}

func TestPager_FailureIsRetryable(t *testing.T) {
	t.Parallel()

	boom := errors.New("upstream down")
	fetch := &scriptFetcher{
		pages: map[int][]listing.Listing{1: page("p1", 2)},
		errs:  map[int]error{1: boom},
	}
	s := NewStore()
	p := NewPager(s, fetch, 2)

	ok, err := p.LoadNext(context.Background())
	if ok || err == nil {
		t.Fatalf("failed fetch: ok=%v err=%v", ok, err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("fetch error not preserved in the chain: %v", err)
	}
	if p.Err() == nil {
		t.Fatalf("Err should report the last failure")
	}
	if s.Len() != 0 {
		t.Fatalf("a failed fetch must not touch the store")
	}
	if p.Page() != 0 || !p.HasMore() {
		t.Fatalf("failure advanced pagination: page=%d hasMore=%v", p.Page(), p.HasMore())
	}

	// same page retried, and the error clears on success
	delete(fetch.errs, 1)
	ok, err = p.LoadNext(context.Background())
	if !ok || err != nil {
		t.Fatalf("retry: ok=%v err=%v", ok, err)
	}
	if p.Err() != nil {
		t.Fatalf("Err should clear after a success: %v", p.Err())
	}
	if s.Len() != 2 {
		t.Fatalf("retry did not ingest")
	}
}

// blockingFetcher parks until released so a fetch can be held in flight
type blockingFetcher struct {
	entered chan struct{}
	release chan struct{}
	batch   []listing.Listing
}

func (f *blockingFetcher) FetchPage(context.Context, int, int) ([]listing.Listing, error) {
	f.entered <- struct{}{}
	<-f.release
	return f.batch, nil
}

func TestPager_LoadNextNoOpWhileLoading(t *testing.T) {
	t.Parallel()

	fetch := &blockingFetcher{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		batch:   page("p1", 1),
	}
	p := NewPager(NewStore(), fetch, 2)

	done := make(chan error, 1)
	go func() {
		_, err := p.LoadNext(context.Background())
		done <- err
	}()
	<-fetch.entered

	if !p.Loading() {
		t.Fatalf("Loading should report true mid-fetch")
	}
	ok, err := p.LoadNext(context.Background())
	if ok || err != nil {
		t.Fatalf("concurrent LoadNext should no-op: ok=%v err=%v", ok, err)
	}

	close(fetch.release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight fetch failed: %v", err)
	}
	if p.Loading() {
		t.Fatalf("Loading stuck after the fetch returned")
	}
}

func TestPager_ResetDiscardsLatePage(t *testing.T) {
	t.Parallel()

	fetch := &blockingFetcher{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		batch:   page("stale", 2),
	}
	s := NewStore()
	p := NewPager(s, fetch, 2)

	done := make(chan struct{})
	go func() {
		p.LoadNext(context.Background())
		close(done)
	}()
	<-fetch.entered

	p.Reset()
	s.Reset()
	close(fetch.release)
	<-done

	if s.Len() != 0 {
		t.Fatalf("a page landing after Reset leaked into the store: %d records", s.Len())
	}
	if p.Page() != 0 || !p.HasMore() {
		t.Fatalf("reset state disturbed by the late page: page=%d hasMore=%v", p.Page(), p.HasMore())
	}
}

func TestPager_ZeroPageSizeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	p := NewPager(NewStore(), &scriptFetcher{}, 0)
	if p.PageSize() != DefaultPageSize {
		t.Fatalf("page size = %d, want %d", p.PageSize(), DefaultPageSize)
	}
}
