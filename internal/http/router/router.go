package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pokeproxy/docs" // registers the OpenAPI document with swag
	"pokeproxy/internal/config"
	"pokeproxy/internal/http/handlers/health"
	pokemonhandler "pokeproxy/internal/http/handlers/pokemon"
	"pokeproxy/internal/http/responses"
	"pokeproxy/internal/logging"
)

func NewRouter(
	logger logging.Logger,
	httpCfg config.HTTPConfig,
	corsCfg config.CORSConfig,
	healthHandler *health.Handler,
	pokemonHandler *pokemonhandler.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger.With("component", "http"), httpCfg, corsCfg)

	r.Get("/health", healthHandler.Check)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API docs
	r.Get("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	r.Route("/api/pokemon", func(r chi.Router) {
		r.Get("/", pokemonHandler.List)
		r.Get("/types", pokemonHandler.ListTypes)
		r.Get("/types/{id}", pokemonHandler.ListByType)
		r.Get("/{search}", pokemonHandler.Search)
	})

	r.NotFound(responses.WriteNotFound)
	r.MethodNotAllowed(responses.WriteMethodNotAllowed)

	return r
}
