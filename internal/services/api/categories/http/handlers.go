// Package http provides http transport for category rails
package http

import (
	stdhttp "net/http"
	"strconv"

	"roamly/internal/modkit/httpkit"
	"roamly/internal/services/api/categories/domain"
	svc "roamly/internal/services/api/categories/service"
)

// Register mounts category endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.NearbyInput](r, "/nearby", h.nearby)
	httpkit.PostJSON[domain.LatestInput](r, "/latest", h.latest)
	httpkit.Get(r, "/most-visited", h.mostVisited)
	httpkit.Get(r, "/most-booked", h.mostBooked)
}

type handlers struct{ svc svc.Service }

// @Summary Listings near the caller's resolved place
// @Tags Categories
// @Accept json
// @Produce json
// @Param payload body domain.NearbyInput true "Session and optional place override"
// @Success 200 {object} domain.CategoryResponse "ok"
// @Failure 428 {object} phttp.Envelope "place required"
// @Router /categories/nearby [post]
func (h *handlers) nearby(r *stdhttp.Request, in domain.NearbyInput) (any, error) {
	return h.svc.Nearby(r.Context(), in)
}

// @Summary Listings created within the last month
// @Tags Categories
// @Accept json
// @Produce json
// @Param payload body domain.LatestInput true "Session"
// @Success 200 {object} domain.CategoryResponse "ok"
// @Router /categories/latest [post]
func (h *handlers) latest(r *stdhttp.Request, in domain.LatestInput) (any, error) {
	return h.svc.Latest(r.Context(), in)
}

// @Summary Server-ranked most visited listings
// @Tags Categories
// @Produce json
// @Param limit query int false "max items"
// @Success 200 {object} domain.CategoryResponse "ok"
// @Router /categories/most-visited [get]
func (h *handlers) mostVisited(r *stdhttp.Request) (any, error) {
	return h.svc.MostVisited(r.Context(), limitParam(r))
}

// @Summary Server-ranked most booked listings
// @Tags Categories
// @Produce json
// @Param limit query int false "max items"
// @Success 200 {object} domain.CategoryResponse "ok"
// @Router /categories/most-booked [get]
func (h *handlers) mostBooked(r *stdhttp.Request) (any, error) {
	return h.svc.MostBooked(r.Context(), limitParam(r))
}

// limitParam reads ?limit leniently; junk falls back to the service default
func limitParam(r *stdhttp.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return n
}
