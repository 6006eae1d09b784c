// Package catalog provides a resilient REST client for the listings catalog
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"roamly/internal/core/listing"
	perr "roamly/internal/platform/errors"
	"roamly/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "roamly-api"
	defaultMaxRetry  = 5
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Scope narrows the upstream listings query. All fields optional;
// changing the scope on a session is what triggers a results reset
type Scope struct {
	Owner   string
	City    string
	Country string
}

// Client is a minimal catalog REST client with bounded retries
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("catalog"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// do issues a GET with retries and rate limit handling
func (c *Client) do(ctx context.Context, path string) (*http.Response, error) {
	u := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "catalog new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "catalog do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("catalog transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("catalog http response")

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil
		case http.StatusTooManyRequests:
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "catalog rate limited")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("sleep", back).Msg("catalog rate limited backing off")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusInternalServerError:
			// transient server side
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "catalog transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("catalog transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "catalog unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

// FetchPage returns one page of listings for scope. Pages are 1-based.
// Records without an id are dropped and the count logged, never returned
func (c *Client) FetchPage(ctx context.Context, scope Scope, page, pageSize int) ([]listing.Listing, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("page_size", fmt.Sprintf("%d", pageSize))
	if scope.Owner != "" {
		q.Set("owner", scope.Owner)
	}
	if scope.City != "" {
		q.Set("city", scope.City)
	}
	if scope.Country != "" {
		q.Set("country", scope.Country)
	}
	return c.fetchList(ctx, "/listings?"+q.Encode())
}

// FetchMostVisited returns the server-ranked most visited listings as-is
func (c *Client) FetchMostVisited(ctx context.Context) ([]listing.Listing, error) {
	return c.fetchList(ctx, "/listings/most-visited")
}

// FetchMostBooked returns the server-ranked most booked listings as-is
func (c *Client) FetchMostBooked(ctx context.Context) ([]listing.Listing, error) {
	return c.fetchList(ctx, "/listings/most-booked")
}

func (c *Client) fetchList(ctx context.Context, path string) ([]listing.Listing, error) {
	resp, err := c.do(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("catalog close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "catalog read body failed")
	}
	kept, dropped, err := listing.DecodeBatch(b)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		c.log.Warn().Int("dropped", dropped).Str("path", path).Msg("catalog dropped malformed records")
	}
	return kept, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// PageSource binds a Client and a Scope into a page fetcher for one session
type PageSource struct {
	Client *Client
	Scope  Scope
}

// FetchPage implements the results pager fetch seam
func (s PageSource) FetchPage(ctx context.Context, page, pageSize int) ([]listing.Listing, error) {
	return s.Client.FetchPage(ctx, s.Scope, page, pageSize)
}
