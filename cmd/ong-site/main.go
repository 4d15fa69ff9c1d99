// main is the entry point of the ONG site server.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open (and set up) the SQLite database
//  4. Build the page router, layout, validator and address client
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/ong-site --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/ong-site
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/ong-site/internal/address"
	"github.com/aanand-mishra/ong-site/internal/config"
	"github.com/aanand-mishra/ong-site/internal/http/render"
	"github.com/aanand-mishra/ong-site/internal/http/server"
	"github.com/aanand-mishra/ong-site/internal/metrics"
	"github.com/aanand-mishra/ong-site/internal/router"
	"github.com/aanand-mishra/ong-site/internal/storage/sqlite"
	"github.com/aanand-mishra/ong-site/internal/validation"
	"github.com/aanand-mishra/ong-site/web"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Handlers log through the package-level slog functions, so the
	// configured logger becomes the default.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting ong-site",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	log.Info("storage initialised", slog.String("path", cfg.StoragePath))

	// ── 4. Site Components ────────────────────────────────────────────────
	pages, err := router.New(web.Pages(), router.DefaultRoutes(), router.DefaultNav, log)
	if err != nil {
		log.Error("failed to build routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	layout, err := render.NewLayout(web.Templates())
	if err != nil {
		log.Error("failed to parse layout", slog.String("error", err.Error()))
		os.Exit(1)
	}

	validator, err := validation.New(nil)
	if err != nil {
		log.Error("failed to build validator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler := server.NewRouter(server.Deps{
		Router:         pages,
		Layout:         layout,
		Storage:        store,
		Validator:      validator,
		Address:        address.NewClient(cfg.AddressLookup.BaseURL, cfg.AddressLookup.Timeout),
		Metrics:        metrics.New(),
		Static:         web.Static(),
		Language:       cfg.Site.Language,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.HTTPServer.WriteTimeout,
	})

	// ── 5. Create and Start the HTTP Server ───────────────────────────────
	srv := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed after Shutdown.
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 6. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// dev: human-readable text at DEBUG. staging: JSON at DEBUG. prod: JSON
// at INFO.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
