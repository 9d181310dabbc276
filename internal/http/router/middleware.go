package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"pokeproxy/internal/config"
	"pokeproxy/internal/logging"
)

func useBaseMiddlewares(r chi.Router, logger logging.Logger, httpCfg config.HTTPConfig, corsCfg config.CORSConfig) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	// One browser origin, read-only, cookies allowed.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsCfg.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet},
		AllowCredentials: true,
	}))

	if httpCfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(httpCfg.RequestTimeout))
	}
}
