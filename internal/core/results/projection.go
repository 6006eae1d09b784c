package results

import (
	"time"

	"roamly/internal/core/listing"
	"roamly/internal/core/query"
)

// LatestWindow is how far back the "latest" category looks
const LatestWindow = 30 * 24 * time.Hour

// Predicate is the membership test a projection substitutes for the
// user-edited criteria
type Predicate func(l *listing.Listing, now time.Time) bool

// Projection is a read-only named view over a store: a preset predicate
// and sort key evaluated against the canonical set. Projections never
// mutate shared state; server-ranked categories (most booked, most
// visited) skip this layer entirely and render their fetch result as-is
type Projection struct {
	Name  string
	Match Predicate
	Sort  query.SortKey
}

// Eval filters a snapshot of the canonical set through the projection's
// predicate and orders it
func (p Projection) Eval(s *Store, now time.Time) []listing.Listing {
	snap := s.Snapshot()
	out := snap[:0]
	for i := range snap {
		if p.Match == nil || p.Match(&snap[i], now) {
			out = append(out, snap[i])
		}
	}
	query.Sort(out, p.Sort, now)
	return out
}

// Nearby binds the location clause to a resolved place. City wins over
// country when both are known
func Nearby(city, country string) Projection {
	loc := city
	if loc == "" {
		loc = country
	}
	crit := query.Criteria{Location: loc}
	return Projection{
		Name: "nearby",
		Match: func(l *listing.Listing, _ time.Time) bool {
			return query.Matches(crit, l)
		},
		Sort: query.SortRecommended,
	}
}

// Latest keeps listings created within LatestWindow, newest first.
// Undated records default their creation time to now and therefore stay
// inside the window, consistent with the newest-sort fallback
func Latest() Projection {
	return Projection{
		Name: "latest",
		Match: func(l *listing.Listing, now time.Time) bool {
			return !l.EffectiveCreatedAt(now).Before(now.Add(-LatestWindow))
		},
		Sort: query.SortNewest,
	}
}
