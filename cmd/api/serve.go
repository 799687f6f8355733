package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mem "pets-api/internal/adapters/storage/memory"
	pg "pets-api/internal/adapters/storage/postgres"
	"pets-api/internal/config"
	"pets-api/internal/middleware"
	"pets-api/internal/platform/ids"
	"pets-api/internal/platform/logger"
	"pets-api/internal/router"
	"pets-api/internal/seed"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

// storeBackend es lo que serve necesita: rutas + re-sembrado.
type storeBackend interface {
	router.Store
	seed.Target
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.Log.App,
	})

	st, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.Store.SeedOnStart {
		if err := seedStore(ctx, st, cfg.Store.SeedFile); err != nil {
			return err
		}
		log.Info("store seeded", logger.Fields{"seed_file": cfg.Store.SeedFile})
	}

	h := router.NewRouter(router.Options{
		Store:  st,
		Logger: log,
		RateLimit: middleware.RateLimitOptions{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		},
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.StoreConfig, log logger.Logger) (storeBackend, func(), error) {
	userIDs := ids.New(cfg.IDStrategy, "user")
	petIDs := ids.New(cfg.IDStrategy, "pet")

	if cfg.DSN == "" {
		log.Info("using memory store", logger.Fields{"id_strategy": string(cfg.IDStrategy)})
		return mem.NewStore(mem.Options{UserIDs: userIDs, PetIDs: petIDs}), func() {}, nil
	}

	db, err := pg.Open(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}
	if err := pg.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("postgres schema: %w", err)
	}
	st, err := pg.NewStore(ctx, db, userIDs, petIDs)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("postgres store: %w", err)
	}

	log.Info("using postgres store", logger.Fields{"id_strategy": string(cfg.IDStrategy)})
	return st, func() { _ = db.Close() }, nil
}

func seedStore(ctx context.Context, st seed.Target, path string) error {
	f, err := loadFixture(path)
	if err != nil {
		return err
	}
	return seed.Seed(ctx, st, f)
}

func loadFixture(path string) (seed.Fixture, error) {
	if path == "" {
		return seed.Default()
	}
	f, err := seed.Load(path)
	if err != nil {
		return seed.Fixture{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	return f, nil
}
