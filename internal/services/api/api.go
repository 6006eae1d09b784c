// Package api provides the HTTP API for the application
package api

import (
	"roamly/internal/platform/config"
	"roamly/internal/platform/logger"
	phttp "roamly/internal/platform/net/http"
	"roamly/internal/platform/store"

	"roamly/internal/modkit"
	"roamly/internal/modkit/httpkit"
	"roamly/internal/modkit/module"
	"roamly/internal/modkit/swaggerkit"

	browsemod "roamly/internal/services/api/browse/module"
	categoriesmod "roamly/internal/services/api/categories/module"
	metamod "roamly/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules; the store is optional, sessions and
	// favorites degrade to memory-only without it
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	// Construct browse first and extract its sessions port
	browse := browsemod.New(deps)
	sessions := module.MustPortsOf[browsemod.Ports](browse).Sessions

	// Inject that port into categories so projections can reach session engines
	categories := categoriesmod.New(
		deps,
		modkit.WithPorts(categoriesmod.Ports{
			Sessions: sessions,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		browse,
		categories,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
