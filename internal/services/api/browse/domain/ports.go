package domain

import (
	"context"

	"roamly/internal/core/results"
)

// ServicePort defines the service contract for browse
type ServicePort interface {
	CreateSession(ctx context.Context, in SessionInput) (SessionResponse, error)
	Listings(ctx context.Context, in SessionRef) (ListingsResponse, error)
	SetFilter(ctx context.Context, in FilterInput) (ListingsResponse, error)
	ClearFilters(ctx context.Context, in SessionRef) (ListingsResponse, error)
	SetSort(ctx context.Context, in SortInput) (ListingsResponse, error)
	LoadNext(ctx context.Context, in SessionRef) (LoadResponse, error)
	ToggleFavorite(ctx context.Context, in ToggleInput) (ToggleResponse, error)
	Favorites(ctx context.Context, in SessionRef) (FavoritesResponse, error)
}

// SessionsPort exposes session result engines to sibling modules that run
// projections over them. Lookup bumps the session's idle deadline
type SessionsPort interface {
	Engine(ctx context.Context, sessionID string) (*results.Engine, error)
}
