// Package http provides http transport for browse sessions
package http

import (
	stdhttp "net/http"

	"roamly/internal/modkit/httpkit"
	"roamly/internal/services/api/browse/domain"
	svc "roamly/internal/services/api/browse/service"
)

// Register mounts browse endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SessionInput](r, "/session", h.createSession)
	httpkit.PostJSON[domain.SessionRef](r, "/listings", h.listings)
	httpkit.PostJSON[domain.FilterInput](r, "/filter", h.setFilter)
	httpkit.PostJSON[domain.SessionRef](r, "/filter/clear", h.clearFilters)
	httpkit.PostJSON[domain.SortInput](r, "/sort", h.setSort)
	httpkit.PostJSON[domain.SessionRef](r, "/next", h.loadNext)
	httpkit.PostJSON[domain.ToggleInput](r, "/favorites/toggle", h.toggleFavorite)
	httpkit.PostJSON[domain.SessionRef](r, "/favorites", h.favorites)
}

type handlers struct{ svc svc.Service }

// @Summary Open a browse session over a listings scope
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.SessionInput true "Scope"
// @Success 200 {object} domain.SessionResponse "ok"
// @Router /browse/session [post]
func (h *handlers) createSession(r *stdhttp.Request, in domain.SessionInput) (any, error) {
	return h.svc.CreateSession(r.Context(), in)
}

// @Summary Current visible listings plus page state
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.SessionRef true "Session"
// @Success 200 {object} domain.ListingsResponse "ok"
// @Router /browse/listings [post]
func (h *handlers) listings(r *stdhttp.Request, in domain.SessionRef) (any, error) {
	return h.svc.Listings(r.Context(), in)
}

// @Summary Merge a partial filter edit
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Filter patch"
// @Success 200 {object} domain.ListingsResponse "ok"
// @Router /browse/filter [post]
func (h *handlers) setFilter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.SetFilter(r.Context(), in)
}

// @Summary Clear all filter clauses
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.SessionRef true "Session"
// @Success 200 {object} domain.ListingsResponse "ok"
// @Router /browse/filter/clear [post]
func (h *handlers) clearFilters(r *stdhttp.Request, in domain.SessionRef) (any, error) {
	return h.svc.ClearFilters(r.Context(), in)
}

// @Summary Switch the result ordering
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.SortInput true "Sort key"
// @Success 200 {object} domain.ListingsResponse "ok"
// @Router /browse/sort [post]
func (h *handlers) setSort(r *stdhttp.Request, in domain.SortInput) (any, error) {
	return h.svc.SetSort(r.Context(), in)
}

// @Summary Load the next upstream page
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.SessionRef true "Session"
// @Success 200 {object} domain.LoadResponse "ok"
// @Router /browse/next [post]
func (h *handlers) loadNext(r *stdhttp.Request, in domain.SessionRef) (any, error) {
	return h.svc.LoadNext(r.Context(), in)
}

// @Summary Toggle a favorite mark
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.ToggleInput true "Listing"
// @Success 200 {object} domain.ToggleResponse "ok"
// @Router /browse/favorites/toggle [post]
func (h *handlers) toggleFavorite(r *stdhttp.Request, in domain.ToggleInput) (any, error) {
	return h.svc.ToggleFavorite(r.Context(), in)
}

// @Summary List favorite listing ids
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body domain.SessionRef true "Session"
// @Success 200 {object} domain.FavoritesResponse "ok"
// @Router /browse/favorites [post]
func (h *handlers) favorites(r *stdhttp.Request, in domain.SessionRef) (any, error) {
	return h.svc.Favorites(r.Context(), in)
}
