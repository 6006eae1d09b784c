// Package module wires categories into the API using modkit
package module

import (
	"net/http"

	"roamly/internal/adapters/catalog"
	"roamly/internal/adapters/geo"
	modkit "roamly/internal/modkit"
	"roamly/internal/modkit/httpkit"
	str "roamly/internal/platform/strings"
	browsedom "roamly/internal/services/api/browse/domain"
	cathttp "roamly/internal/services/api/categories/http"
	catsvc "roamly/internal/services/api/categories/service"
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

	svc catsvc.Service
}

// Ports declares the injected browse port this module depends on
type Ports struct {
	Sessions browsedom.SessionsPort
}

// New constructs a categories module. The browse sessions port must be
// injected; the geo resolver and catalog client come from config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("categories"),
		modkit.WithPrefix("/categories"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Sessions == nil {
		panic("categories module requires Sessions port (from api/browse)")
	}

	cfg := FromConfig(deps.Cfg)

	resolver := geo.NewResolver(geo.Options{
		BaseURL:   cfg.GeoBaseURL,
		UserAgent: cfg.GeoUA,
		Timeout:   cfg.GeoTimeout,
	})
	client := catalog.NewClient(catalog.Options{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryBase:  cfg.RetryBase,
	})

	svc := catsvc.New(injected.Sessions, resolver, client, nil)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCategoriesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		cathttp.Register(r, m.svc)
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
