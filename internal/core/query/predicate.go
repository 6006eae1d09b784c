package query

import (
	"roamly/internal/core/fold"
	"roamly/internal/core/listing"
)

// Matches reports whether l passes every active clause of c.
// Total and side-effect free: any listing and any criteria produce a
// boolean, never a panic. Inactive clauses pass unconditionally
func Matches(c Criteria, l *listing.Listing) bool {
	return matchesLocation(c, l) &&
		matchesPrice(c, l) &&
		matchesKind(c, l) &&
		matchesFeatures(c, l) &&
		matchesGuests(c, l)
}

// Filter returns the subset of in matching c, preserving input order
func Filter(c Criteria, in []listing.Listing) []listing.Listing {
	out := make([]listing.Listing, 0, len(in))
	for i := range in {
		if Matches(c, &in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

// matchesLocation matches any of city, country, address as a folded
// substring. A listing missing all three never matches an active clause
func matchesLocation(c Criteria, l *listing.Listing) bool {
	if c.Location == "" {
		return true
	}
	return fold.Contains(l.City, c.Location) ||
		fold.Contains(l.Country, c.Location) ||
		fold.Contains(l.Address, c.Location)
}

// matchesPrice applies inclusive bounds. A record that never stated a
// price carries the zero value, which passes any min of zero and fails a
// stricter one; that is the single defaulting policy, not per-screen
func matchesPrice(c Criteria, l *listing.Listing) bool {
	if c.MinPrice != nil && l.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && l.Price > *c.MaxPrice {
		return false
	}
	return true
}

// matchesKind treats an empty allow-set as the absence of a restriction
func matchesKind(c Criteria, l *listing.Listing) bool {
	if len(c.Kinds) == 0 {
		return true
	}
	for _, k := range c.Kinds {
		if l.Kind == k {
			return true
		}
	}
	return false
}

// matchesFeatures requires every listed feature to be present
func matchesFeatures(c Criteria, l *listing.Listing) bool {
	if len(c.Features) == 0 {
		return true
	}
	have := l.Features()
	for _, want := range c.Features {
		found := false
		for _, h := range have {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesGuests compares against Capacity, which already defaults an
// unstated capacity to listing.DefaultGuests
func matchesGuests(c Criteria, l *listing.Listing) bool {
	if c.MinGuests <= 0 {
		return true
	}
	return l.Capacity() >= c.MinGuests
}
