package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apppokemon "pokeproxy/internal/app/pokemon"
	"pokeproxy/internal/clients/pokeapi"
	"pokeproxy/internal/config"
	"pokeproxy/internal/http/handlers/health"
	pokemonhandler "pokeproxy/internal/http/handlers/pokemon"
	"pokeproxy/internal/http/router"
	"pokeproxy/internal/kafka"
	"pokeproxy/internal/logging"
	"pokeproxy/internal/telemetry"
)

// @title			Pokémon API
// @version		1.0.0
// @description	Proxy de solo lectura sobre la API pública de Pokémon.
// @BasePath		/
func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Environment,
	)

	logger.Info("starting service",
		"env", cfg.Environment,
		"upstream", cfg.Upstream.EffectiveBaseURL(),
	)

	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// 4) Upstream API client
	source, err := pokeapi.New(cfg.Upstream.EffectiveBaseURL(), cfg.Upstream.Timeout, logger)
	if err != nil {
		logger.Error("failed to init upstream client", "error", err)
		os.Exit(1)
	}

	// 5) Kafka bus + consumer (no-ops when disabled)
	bus, closeBus, err := kafka.NewBus(cfg.Kafka, logger)
	if err != nil {
		logger.Error("failed to init kafka bus", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeBus(context.Background())
	}()

	kafkaRouter, err := kafka.NewRouter(ctx, cfg.Kafka, logger)
	if err != nil {
		logger.Error("failed to init kafka router", "error", err)
		os.Exit(1)
	}

	// 6) Service
	pokemonService := apppokemon.NewService(
		source,
		kafka.NewPokemonEvents(bus, cfg.Kafka, logger),
		logger,
	)

	// 7) HTTP router
	httpRouter := router.NewRouter(
		logger,
		cfg.HTTP,
		cfg.CORS,
		health.NewHandler(),
		pokemonhandler.NewHandler(pokemonService, logger),
	)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8) Start concurrent processes (HTTP server, Kafka router)
	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting",
			"host", cfg.HTTP.Host,
			"port", cfg.HTTP.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		if err := kafkaRouter.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// 9) Wait for shutdown signal or an error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("fatal error from subsystem", "error", err)
		stop()
	}

	// 10) Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}
	if err := kafkaRouter.Close(shutdownCtx); err != nil {
		logger.Error("failed to close kafka router", "error", err)
	}

	logger.Info("service stopped")
}
