package domain

import "context"

// ServicePort defines the service contract for categories
type ServicePort interface {
	Nearby(ctx context.Context, in NearbyInput) (CategoryResponse, error)
	Latest(ctx context.Context, in LatestInput) (CategoryResponse, error)
	MostVisited(ctx context.Context, limit int) (CategoryResponse, error)
	MostBooked(ctx context.Context, limit int) (CategoryResponse, error)
}
