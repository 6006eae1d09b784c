package module

import (
	"context"

	catdom "roamly/internal/services/api/categories/domain"
	catsvc "roamly/internal/services/api/categories/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCategoriesPort adapts the categories service to the domain port interface
type adaptCategoriesPort struct{ svc catsvc.Service }

// Nearby implements the domain ServicePort interface
func (a adaptCategoriesPort) Nearby(ctx context.Context, in catdom.NearbyInput) (catdom.CategoryResponse, error) {
	return a.svc.Nearby(ctx, in)
}

// Latest implements the domain ServicePort interface
func (a adaptCategoriesPort) Latest(ctx context.Context, in catdom.LatestInput) (catdom.CategoryResponse, error) {
	return a.svc.Latest(ctx, in)
}

// MostVisited implements the domain ServicePort interface
func (a adaptCategoriesPort) MostVisited(ctx context.Context, limit int) (catdom.CategoryResponse, error) {
	return a.svc.MostVisited(ctx, limit)
}

// MostBooked implements the domain ServicePort interface
func (a adaptCategoriesPort) MostBooked(ctx context.Context, limit int) (catdom.CategoryResponse, error) {
	return a.svc.MostBooked(ctx, limit)
}
