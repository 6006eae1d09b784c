// @title         Roamly API
// @version       0.1.0
// @description   Browse sessions, filtering, sorting, and category rails over the listings catalog

package main

import (
	"context"

	"roamly/internal/modkit/repokit"
	"roamly/internal/platform/config"
	"roamly/internal/platform/logger"
	phttp "roamly/internal/platform/net/http"
	"roamly/internal/platform/store"

	"roamly/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*
	// bring up logging early
	l := logger.Get()

	// open the platform store when postgres is configured; without it
	// sessions and favorites stay memory-only
	var st *store.Store
	if dburl := pgCfg.MayString("DBURL", ""); dburl != "" {
		s, err := store.Open(
			context.Background(),
			store.Config{
				PG: store.PGConfig{
					Enabled:     true,
					URL:         dburl,
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", true),
				},
			},
			store.WithLogger(*logger.Get()),
		)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		repokit.MustGuard(context.Background(), s)
		st = s
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
