package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "phonecheck_backend/internal/http"
	"phonecheck_backend/internal/http/router"
	"phonecheck_backend/internal/numbering"
	"phonecheck_backend/internal/numbering/engine"
	"phonecheck_backend/internal/numbering/plan"
	"phonecheck_backend/platform/config"
	"phonecheck_backend/platform/logger"
	"phonecheck_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Numbering Plan (read-only, shared by all requests)
	// ========================================================================

	store, err := plan.Load(cfg.GetPlanDataPath())
	if err != nil {
		log.Error("failed to load numbering plan", "error", err)
		panic("failed to load numbering plan: " + err.Error())
	}
	source := "embedded"
	if cfg.GetPlanDataPath() != "" {
		source = cfg.GetPlanDataPath()
	}
	log.PlanLoaded(source, len(store.Regions()), store.CallingCodeCount())

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	numberingModule := numbering.NewModule(engine.New(store), cfg, log, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			numberingModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
