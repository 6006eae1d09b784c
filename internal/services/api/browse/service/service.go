// Package service contains browse session workflows
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"roamly/internal/core/listing"
	"roamly/internal/core/query"
	"roamly/internal/core/results"
	"roamly/internal/modkit/repokit"
	perr "roamly/internal/platform/errors"
	"roamly/internal/platform/logger"
	"roamly/internal/platform/store"
	"roamly/internal/services/api/browse/domain"
	"roamly/internal/services/api/browse/repo"
)

// DefaultSessionTTL is how long an untouched session survives
const DefaultSessionTTL = 30 * time.Minute

// Service defines the service contract for browse
type Service interface{ domain.ServicePort }

// SourceFactory builds a page fetcher for one upstream scope
type SourceFactory func(owner, city, country string) results.PageFetcher

// Options configures session behavior
type Options struct {
	Source   SourceFactory
	TTL      time.Duration
	PageSize int
	Log      *logger.Logger
}

type session struct {
	engine   *results.Engine
	owner    string
	lastSeen time.Time
}

// Svc implements the Service interface. Sessions live in memory and expire
// after the idle TTL; expiry is lazy, checked on lookup and swept on create
type Svc struct {
	mu       sync.Mutex
	sessions map[string]*session

	source   SourceFactory
	ttl      time.Duration
	pageSize int
	repo     repo.Repo // nil when persistence is off
	db       repokit.TxRunner
	binder   repokit.Binder[repo.Repo]
	log      *logger.Logger

	now   func() time.Time
	newID func() string
}

// New creates a new browse service. db and binder may both be nil, which
// turns durable favorites off; the source factory is mandatory
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts Options) *Svc {
	if opts.Source == nil {
		panic("browse.Service requires a source factory")
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultSessionTTL
	}
	if opts.Log == nil {
		opts.Log = logger.Named("browse")
	}
	s := &Svc{
		sessions: make(map[string]*session),
		source:   opts.Source,
		ttl:      opts.TTL,
		pageSize: opts.PageSize,
		log:      opts.Log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	if db != nil && binder != nil {
		s.repo = binder.Bind(db)
		s.db = db
		s.binder = binder
	}
	return s
}

// CreateSession opens a result engine over the requested scope. When the
// scope names an owner and persistence is on, their durable favorite marks
// preload the overlay
func (s *Svc) CreateSession(ctx context.Context, in domain.SessionInput) (domain.SessionResponse, error) {
	fetch := s.source(in.Owner, in.City, in.Country)
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	eng := results.NewEngine(fetch, pageSize)

	if s.repo != nil && in.Owner != "" {
		ids, err := s.repo.ListByOwner(ctx, in.Owner)
		if err != nil {
			s.log.Warn().Err(err).Str("owner", in.Owner).Msg("favorites preload failed")
		} else {
			eng.Favorites().Load(ids)
		}
	}

	id := s.newID()
	now := s.now()

	s.mu.Lock()
	s.sweepLocked(now)
	s.sessions[id] = &session{engine: eng, owner: in.Owner, lastSeen: now}
	s.mu.Unlock()

	s.log.Info().Str("session_id", id).Str("owner", in.Owner).
		Str("city", in.City).Str("country", in.Country).Msg("session created")
	return domain.SessionResponse{SessionID: id}, nil
}

// Engine implements the SessionsPort lookup for sibling modules
func (s *Svc) Engine(ctx context.Context, sessionID string) (*results.Engine, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.engine, nil
}

// Listings returns the visible set plus page state
func (s *Svc) Listings(ctx context.Context, in domain.SessionRef) (domain.ListingsResponse, error) {
	sess, err := s.get(in.SessionID)
	if err != nil {
		return domain.ListingsResponse{}, err
	}
	return s.render(sess), nil
}

// SetFilter merges a partial criteria edit and returns the new visible set
func (s *Svc) SetFilter(ctx context.Context, in domain.FilterInput) (domain.ListingsResponse, error) {
	sess, err := s.get(in.SessionID)
	if err != nil {
		return domain.ListingsResponse{}, err
	}
	patch := query.Patch{
		Location:  in.Location,
		MinPrice:  in.MinPrice,
		MaxPrice:  in.MaxPrice,
		Features:  in.Features,
		MinGuests: in.MinGuests,
	}
	if in.Kinds != nil {
		kinds := make([]listing.Kind, 0, len(*in.Kinds))
		for _, k := range *in.Kinds {
			kinds = append(kinds, listing.Kind(k))
		}
		patch.Kinds = &kinds
	}
	if err := sess.engine.SetFilter(patch); err != nil {
		return domain.ListingsResponse{}, err
	}
	return s.render(sess), nil
}

// ClearFilters restores the all-permissive criteria
func (s *Svc) ClearFilters(ctx context.Context, in domain.SessionRef) (domain.ListingsResponse, error) {
	sess, err := s.get(in.SessionID)
	if err != nil {
		return domain.ListingsResponse{}, err
	}
	sess.engine.ClearFilters()
	return s.render(sess), nil
}

// SetSort switches the session ordering
func (s *Svc) SetSort(ctx context.Context, in domain.SortInput) (domain.ListingsResponse, error) {
	sess, err := s.get(in.SessionID)
	if err != nil {
		return domain.ListingsResponse{}, err
	}
	if err := sess.engine.SetSort(query.SortKey(in.Key)); err != nil {
		return domain.ListingsResponse{}, err
	}
	return s.render(sess), nil
}

// LoadNext fetches and ingests the next upstream page. A call while a fetch
// is in flight, or past the last page, reports loaded=false without error
func (s *Svc) LoadNext(ctx context.Context, in domain.SessionRef) (domain.LoadResponse, error) {
	sess, err := s.get(in.SessionID)
	if err != nil {
		return domain.LoadResponse{}, err
	}
	loaded, err := sess.engine.LoadNext(ctx)
	if err != nil {
		return domain.LoadResponse{}, err
	}
	return domain.LoadResponse{
		Loaded:  loaded,
		Page:    sess.engine.Page(),
		HasMore: sess.engine.HasMore(),
	}, nil
}

// ToggleFavorite flips the mark and writes it through when persistence is on.
// A write-through failure keeps the in-memory flip and logs; the overlay is
// the source of truth for the session
func (s *Svc) ToggleFavorite(ctx context.Context, in domain.ToggleInput) (domain.ToggleResponse, error) {
	sess, err := s.get(in.SessionID)
	if err != nil {
		return domain.ToggleResponse{}, err
	}
	fav := sess.engine.ToggleFavorite(in.ListingID)
	if s.db != nil && sess.owner != "" {
		// session-tagged tx so the slow-query tracer can attribute it
		werr := store.RunInSession(ctx, s.db, in.SessionID, func(ctx context.Context, q store.RowQuerier) error {
			r := s.binder.Bind(q)
			if fav {
				return r.Add(ctx, sess.owner, in.ListingID)
			}
			return r.Remove(ctx, sess.owner, in.ListingID)
		})
		if werr != nil {
			s.log.Warn().Err(werr).Str("owner", sess.owner).
				Str("listing_id", in.ListingID).Msg("favorite write-through failed")
		}
	}
	return domain.ToggleResponse{ListingID: in.ListingID, Favorite: fav}, nil
}

// Favorites lists the marked ids, sorted
func (s *Svc) Favorites(ctx context.Context, in domain.SessionRef) (domain.FavoritesResponse, error) {
	sess, err := s.get(in.SessionID)
	if err != nil {
		return domain.FavoritesResponse{}, err
	}
	return domain.FavoritesResponse{IDs: sess.engine.Favorites().IDs()}, nil
}

// get looks a session up and bumps its idle deadline
func (s *Svc) get(id string) (*session, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, perr.NotFoundf("unknown session %s", id)
	}
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, perr.NotFoundf("session %s expired", id)
	}
	sess.lastSeen = now
	return sess, nil
}

// sweepLocked drops all expired sessions. Caller holds the lock
func (s *Svc) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *Svc) render(sess *session) domain.ListingsResponse {
	eng := sess.engine
	visible := eng.Visible()
	items := make([]domain.ListingView, 0, len(visible))
	for i := range visible {
		items = append(items, viewOf(&visible[i], eng.IsFavorite(visible[i].ID)))
	}
	return domain.ListingsResponse{
		Items:     items,
		Total:     len(items),
		Page:      eng.Page(),
		PageSize:  eng.PageSize(),
		HasMore:   eng.HasMore(),
		IsLoading: eng.Loading(),
		SortKey:   string(eng.Store().SortKey()),
	}
}

func viewOf(l *listing.Listing, fav bool) domain.ListingView {
	v := domain.ListingView{
		ID:        l.ID,
		Kind:      string(l.Kind),
		Title:     l.Title,
		Address:   l.Address,
		City:      l.City,
		Country:   l.Country,
		Price:     l.Price,
		Currency:  l.Currency,
		Rating:    l.EffectiveRating(),
		Reviews:   l.Reviews,
		Capacity:  l.Capacity(),
		Thumbnail: l.Thumbnail(),
		Images:    l.Images,
		Features:  l.Features(),
		Favorite:  fav,
	}
	if l.CreatedAt != nil {
		v.CreatedAt = l.CreatedAt.UTC().Format(time.RFC3339)
	}
	return v
}
