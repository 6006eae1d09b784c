package query

import (
	"testing"
	"time"

	"roamly/internal/core/listing"
)

func priced(id string, price float64) listing.Listing {
	return listing.Listing{ID: id, Kind: listing.KindAccommodation, Price: price}
}

func rated(id string, rating float64) listing.Listing {
	return listing.Listing{ID: id, Kind: listing.KindAccommodation, Rating: &rating}
}

func ids(in []listing.Listing) []string {
	out := make([]string, len(in))
	for i := range in {
		out[i] = in[i].ID
	}
	return out
}

func wantOrder(t *testing.T, got []listing.Listing, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestSort_PriceLowTieBreaksByID(t *testing.T) {
	t.Parallel()

	set := []listing.Listing{priced("a", 300), priced("b", 100), priced("c", 100)}
	Sort(set, SortPriceLow, time.Now())
	wantOrder(t, set, "b", "c", "a")
}

func TestSort_PriceHigh(t *testing.T) {
	t.Parallel()

	set := []listing.Listing{priced("a", 50), priced("b", 200), priced("c", 200)}
	Sort(set, SortPriceHigh, time.Now())
	wantOrder(t, set, "b", "c", "a")
}

func TestSort_RatingMissingAsZero(t *testing.T) {
	t.Parallel()

	set := []listing.Listing{
		{ID: "unrated", Kind: listing.KindAccommodation},
		rated("mid", 3.5),
		rated("top", 4.9),
	}
	Sort(set, SortRating, time.Now())
	wantOrder(t, set, "top", "mid", "unrated")
}

func TestSort_NewestUndatedOnTop(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	old := now.Add(-72 * time.Hour)
	fresh := now.Add(-time.Hour)
	set := []listing.Listing{
		{ID: "old", Kind: listing.KindAccommodation, CreatedAt: &old},
		{ID: "undated", Kind: listing.KindAccommodation},
		{ID: "fresh", Kind: listing.KindAccommodation, CreatedAt: &fresh},
	}
	Sort(set, SortNewest, now)
	wantOrder(t, set, "undated", "fresh", "old")
}

func TestSort_Deterministic(t *testing.T) {
	t.Parallel()

	now := time.Now()
	for _, key := range []SortKey{SortRecommended, SortPriceLow, SortPriceHigh, SortRating, SortNewest} {
		a := []listing.Listing{priced("d", 100), priced("b", 100), priced("a", 100), priced("c", 100)}
		b := []listing.Listing{priced("a", 100), priced("c", 100), priced("d", 100), priced("b", 100)}
		Sort(a, key, now)
		Sort(b, key, now)
		for i := range a {
			if a[i].ID != b[i].ID {
				t.Fatalf("%s: order depends on input permutation: %v vs %v", key, ids(a), ids(b))
			}
		}
		// sorting an already sorted set changes nothing
		again := append([]listing.Listing(nil), a...)
		Sort(again, key, now)
		for i := range a {
			if a[i].ID != again[i].ID {
				t.Fatalf("%s: repeated sort not idempotent", key)
			}
		}
	}
}

func TestSortKey_Valid(t *testing.T) {
	t.Parallel()

	for _, k := range []SortKey{SortRecommended, SortPriceLow, SortPriceHigh, SortRating, SortNewest} {
		if !k.Valid() {
			t.Fatalf("%s should be valid", k)
		}
	}
	if SortKey("alphabetical").Valid() {
		t.Fatalf("unknown key should be invalid")
	}
}
