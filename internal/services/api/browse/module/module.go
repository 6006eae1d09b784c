// Package module wires browse into the API using modkit
package module

import (
	"net/http"

	"roamly/internal/adapters/catalog"
	"roamly/internal/core/results"
	modkit "roamly/internal/modkit"
	"roamly/internal/modkit/httpkit"
	str "roamly/internal/platform/strings"
	browsehttp "roamly/internal/services/api/browse/http"
	browserepo "roamly/internal/services/api/browse/repo"
	browsesvc "roamly/internal/services/api/browse/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc browsesvc.Service
}

// New constructs a browse module with the provided dependencies and options.
// The catalog client and session knobs come from config; durable favorites
// switch on only when a postgres handle is present
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("browse"), modkit.WithPrefix("/browse")}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	client := catalog.NewClient(catalog.Options{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryBase:  cfg.RetryBase,
	})
	svc := browsesvc.New(deps.PG, browserepo.NewPG(), browsesvc.Options{
		Source: func(owner, city, country string) results.PageFetcher {
			return &catalog.PageSource{Client: client, Scope: catalog.Scope{Owner: owner, City: city, Country: country}}
		},
		TTL:      cfg.SessionTTL,
		PageSize: cfg.PageSize,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Sessions: adaptSessionsPort{svc: svc}}

	external := b.Register
	m.register = func(r httpkit.Router) {
		browsehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
