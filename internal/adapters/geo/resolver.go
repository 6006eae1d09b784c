// Package geo resolves a caller's approximate place from a geolocation service
package geo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "roamly/internal/platform/errors"
	"roamly/internal/platform/logger"
)

const (
	defaultTimeout = 5 * time.Second
	defaultUA      = "roamly-api"
)

// Options configures the Resolver
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Place is a resolved coarse location
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Resolver is a thin client over the geolocation endpoint. Any failure
// maps to a needs-location error so callers can ask the user for a
// manual location instead of surfacing a transport error
type Resolver struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewResolver creates a Resolver with sane defaults
func NewResolver(o Options) *Resolver {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Resolver{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("geo"),
	}
}

// Resolve returns the caller's place or a needs-location error
func (r *Resolver) Resolve(ctx context.Context) (Place, error) {
	if r.opts.BaseURL == "" {
		return Place{}, perr.NeedsLocationf("geolocation not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.opts.BaseURL+"/resolve", nil)
	if err != nil {
		return Place{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "geo new request failed")
	}
	req.Header.Set("User-Agent", r.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		r.log.Warn().Err(err).Msg("geo resolve transport error")
		return Place{}, perr.Wrapf(err, perr.ErrorCodeNeedsLocation, "geolocation unavailable")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			r.log.Error().Err(cerr).Msg("geo close body failed")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn().Int("status", resp.StatusCode).Msg("geo resolve non-ok status")
		return Place{}, perr.NeedsLocationf("geolocation failed with status %d", resp.StatusCode)
	}

	var out Place
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Place{}, perr.Wrapf(err, perr.ErrorCodeNeedsLocation, "geolocation read failed")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return Place{}, perr.Wrapf(err, perr.ErrorCodeNeedsLocation, "geolocation decode failed")
	}
	if out.City == "" && out.Country == "" {
		return Place{}, perr.NeedsLocationf("geolocation returned no place")
	}
	return out, nil
}
