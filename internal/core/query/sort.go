package query

import (
	"sort"
	"time"

	"roamly/internal/core/listing"
)

// SortKey names one of the orderings the registry knows
type SortKey string

const (
	// SortRecommended is the default ordering: rating descending with
	// unrated treated as zero. It stands in for a relevance model
	SortRecommended SortKey = "recommended"
	// SortPriceLow orders by price ascending
	SortPriceLow SortKey = "price_low"
	// SortPriceHigh orders by price descending
	SortPriceHigh SortKey = "price_high"
	// SortRating orders by rating descending, unrated last
	SortRating SortKey = "rating"
	// SortNewest orders by creation time descending; undated records sort
	// as "now", which puts them on top
	SortNewest SortKey = "newest"
)

// Valid reports whether k names a registered ordering
func (k SortKey) Valid() bool {
	switch k {
	case SortRecommended, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return true
	}
	return false
}

// Less is a strict ordering over two listings
type Less func(a, b *listing.Listing) bool

// Order returns the comparator registered for k. Every comparator is a
// strict total order over any set of id-unique listings: ties on the sort
// attribute fall back to id-lexicographic order, so repeated sorts of the
// same input are idempotent. now anchors the undated-record fallback and
// must be held fixed for the duration of one sort
func Order(k SortKey, now time.Time) Less {
	switch k {
	case SortPriceLow:
		return func(a, b *listing.Listing) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return a.ID < b.ID
		}
	case SortPriceHigh:
		return func(a, b *listing.Listing) bool {
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return a.ID < b.ID
		}
	case SortNewest:
		return func(a, b *listing.Listing) bool {
			at, bt := a.EffectiveCreatedAt(now), b.EffectiveCreatedAt(now)
			if !at.Equal(bt) {
				return at.After(bt)
			}
			return a.ID < b.ID
		}
	case SortRating, SortRecommended:
		fallthrough
	default:
		return func(a, b *listing.Listing) bool {
			ar, br := a.EffectiveRating(), b.EffectiveRating()
			if ar != br {
				return ar > br
			}
			return a.ID < b.ID
		}
	}
}

// Sort orders items in place under k
func Sort(items []listing.Listing, k SortKey, now time.Time) {
	less := Order(k, now)
	sort.Slice(items, func(i, j int) bool { return less(&items[i], &items[j]) })
}
