// Package service evaluates category rails over sessions and the catalog
package service

import (
	"context"
	"time"

	"roamly/internal/adapters/geo"
	"roamly/internal/core/listing"
	"roamly/internal/core/results"
	"roamly/internal/platform/logger"
	browsedom "roamly/internal/services/api/browse/domain"
	"roamly/internal/services/api/categories/domain"
)

// DefaultLimit caps a category rail when the caller does not say
const DefaultLimit = 10

// Service defines the service contract for categories
type Service interface{ domain.ServicePort }

// PlaceResolver resolves the caller's place for the nearby category
type PlaceResolver interface {
	Resolve(ctx context.Context) (geo.Place, error)
}

// RankedSource returns server-ranked listing sets as-is
type RankedSource interface {
	FetchMostVisited(ctx context.Context) ([]listing.Listing, error)
	FetchMostBooked(ctx context.Context) ([]listing.Listing, error)
}

// Svc implements the Service interface
type Svc struct {
	sessions browsedom.SessionsPort
	places   PlaceResolver
	ranked   RankedSource
	log      *logger.Logger
	now      func() time.Time
}

// New creates a new categories service
func New(sessions browsedom.SessionsPort, places PlaceResolver, ranked RankedSource, log *logger.Logger) *Svc {
	if sessions == nil {
		panic("categories.Service requires a sessions port")
	}
	if places == nil {
		panic("categories.Service requires a place resolver")
	}
	if ranked == nil {
		panic("categories.Service requires a ranked source")
	}
	if log == nil {
		log = logger.Named("categories")
	}
	return &Svc{sessions: sessions, places: places, ranked: ranked, log: log, now: time.Now}
}

// Nearby evaluates the near-you projection over the session's loaded set.
// An explicit city or country skips geolocation; otherwise a resolver
// failure bubbles up so the client can ask the user for a place
func (s *Svc) Nearby(ctx context.Context, in domain.NearbyInput) (domain.CategoryResponse, error) {
	city, country := in.City, in.Country
	if city == "" && country == "" {
		place, err := s.places.Resolve(ctx)
		if err != nil {
			return domain.CategoryResponse{}, err
		}
		city, country = place.City, place.Country
	}

	eng, err := s.sessions.Engine(ctx, in.SessionID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	proj := results.Nearby(city, country)
	items := proj.Eval(eng.Store(), s.now())
	return domain.CategoryResponse{
		Name:  proj.Name,
		Items: cards(items, eng, limitOf(in.Limit)),
		Place: &domain.PlaceView{City: city, Country: country},
	}, nil
}

// Latest evaluates the recently-listed projection over the session's loaded set
func (s *Svc) Latest(ctx context.Context, in domain.LatestInput) (domain.CategoryResponse, error) {
	eng, err := s.sessions.Engine(ctx, in.SessionID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	proj := results.Latest()
	items := proj.Eval(eng.Store(), s.now())
	return domain.CategoryResponse{
		Name:  proj.Name,
		Items: cards(items, eng, limitOf(in.Limit)),
	}, nil
}

// MostVisited renders the server-ranked most-visited set in upstream order
func (s *Svc) MostVisited(ctx context.Context, limit int) (domain.CategoryResponse, error) {
	items, err := s.ranked.FetchMostVisited(ctx)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{Name: "most_visited", Items: cards(items, nil, limitOf(limit))}, nil
}

// MostBooked renders the server-ranked most-booked set in upstream order
func (s *Svc) MostBooked(ctx context.Context, limit int) (domain.CategoryResponse, error) {
	items, err := s.ranked.FetchMostBooked(ctx)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{Name: "most_booked", Items: cards(items, nil, limitOf(limit))}, nil
}

func limitOf(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	return n
}

// cards renders at most limit listings; eng may be nil when no session is
// in play, which leaves every favorite mark false
func cards(ls []listing.Listing, eng *results.Engine, limit int) []domain.Card {
	if len(ls) > limit {
		ls = ls[:limit]
	}
	out := make([]domain.Card, 0, len(ls))
	for i := range ls {
		l := &ls[i]
		out = append(out, domain.Card{
			ID:        l.ID,
			Kind:      string(l.Kind),
			Title:     l.Title,
			City:      l.City,
			Country:   l.Country,
			Price:     l.Price,
			Currency:  l.Currency,
			Rating:    l.EffectiveRating(),
			Reviews:   l.Reviews,
			Thumbnail: l.Thumbnail(),
			Favorite:  eng != nil && eng.IsFavorite(l.ID),
		})
	}
	return out
}
