// Command server runs the perfume quiz and catalog HTTP API.
//
// Startup order: load .env (best effort), build config, configure logging,
// open the catalog backend and load it into memory, set up tracing, mount
// the router, then serve until SIGINT/SIGTERM triggers a graceful drain.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Dhayou05/Karim-perfume/internal/config"
	httpapi "github.com/Dhayou05/Karim-perfume/internal/http"
	"github.com/Dhayou05/Karim-perfume/internal/observability"
	"github.com/Dhayou05/Karim-perfume/internal/store"
	"github.com/Dhayou05/Karim-perfume/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Optional .env for local development; the environment wins otherwise.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("open catalog backend")
	}

	catalog := store.NewCatalog(backend)
	ctx := context.Background()
	if err := catalog.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}
	log.Info().
		Str("driver", cfg.StorageDriver).
		Int("perfumes", catalog.Len()).
		Msg("catalog loaded")

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup tracing")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, catalog, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", version).
			Str("service", sysutil.FirstNonEmpty(cfg.OTEL.ServiceName, "perfume-quiz")).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
	log.Info().Msg("bye")
}

// newBackend selects the persistence backend from config. Validation in
// config.Load guarantees the driver is one of the known names.
func newBackend(cfg config.Config) (store.Backend, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		return store.OpenSQLite(cfg.DBPath)
	default:
		return store.NewSnapshotBackend(cfg.SnapshotPath), nil
	}
}
