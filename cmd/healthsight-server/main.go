package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthsight/healthsight/internal/config"
	"github.com/healthsight/healthsight/internal/domain/admin"
	"github.com/healthsight/healthsight/internal/domain/appointments"
	"github.com/healthsight/healthsight/internal/domain/billing"
	"github.com/healthsight/healthsight/internal/domain/dashboard"
	"github.com/healthsight/healthsight/internal/domain/doctors"
	"github.com/healthsight/healthsight/internal/domain/labreports"
	"github.com/healthsight/healthsight/internal/domain/patients"
	"github.com/healthsight/healthsight/internal/domain/pharmacy"
	"github.com/healthsight/healthsight/internal/platform/auth"
	"github.com/healthsight/healthsight/internal/platform/db"
	"github.com/healthsight/healthsight/internal/platform/middleware"
	"github.com/healthsight/healthsight/internal/store"
)

// devAuthSecret is used when AUTH_SECRET is unset in development so the
// demo works out of the box. Validate() rejects an empty secret elsewhere.
const devAuthSecret = "healthsight-dev-secret"

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthsight-server",
		Short: "HealthSight hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(stateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore demo defaults into the configured storage backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := context.Background()
			repo, cleanup, err := newRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.New(repo, logger)
			st.Reset(ctx)
			fmt.Println("demo data reset")
			return nil
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the persisted snapshot from the configured storage backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := context.Background()
			repo, cleanup, err := newRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			raw, err := repo.Load(ctx)
			if err != nil {
				return err
			}
			if raw == nil {
				fmt.Println("(empty slot)")
				return nil
			}

			var buf map[string]json.RawMessage
			if err := json.Unmarshal(raw, &buf); err != nil {
				return fmt.Errorf("persisted snapshot is not valid JSON: %w", err)
			}
			pretty, err := json.MarshalIndent(buf, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(pretty))
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// newRepository selects the storage backend from config. The returned
// cleanup func closes the pg pool when one was opened.
func newRepository(ctx context.Context, cfg *config.Config) (store.Repository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return store.NewMemoryRepository(), func() {}, nil
	case config.BackendFile:
		return store.NewFileRepository(cfg.StoragePath), func() {}, nil
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		repo, err := store.NewPGRepository(ctx, pool, cfg.StorageSlot)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func runServer() error {
	logger := newLogger()

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	secret := cfg.AuthSecret
	if secret == "" {
		secret = devAuthSecret
		logger.Warn().Msg("AUTH_SECRET not set, using built-in development secret")
	}

	// Storage
	ctx := context.Background()
	repo, cleanup, err := newRepository(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up storage")
	}
	defer cleanup()
	logger.Info().Str("backend", cfg.StorageBackend).Msg("storage ready")

	st := store.New(repo, logger)
	st.Initialize(ctx)

	// Auth
	registry, err := auth.NewRegistry()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed demo users")
	}
	tokens := auth.NewTokenService(secret, cfg.TokenTTL())

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	if d := cfg.DemoLatency(); d > 0 {
		e.Use(middleware.Latency(d))
		logger.Info().Dur("latency", d).Msg("simulated latency enabled")
	}

	// Health check
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API group. Login is registered before the auth guard so it stays open.
	apiV1 := e.Group("/api/v1")
	auth.NewHandler(registry, tokens).RegisterRoutes(apiV1)
	apiV1.Use(auth.Protect(tokens))

	dashboard.NewHandler(dashboard.NewService(st)).RegisterRoutes(apiV1)
	doctors.NewHandler(doctors.NewService(st)).RegisterRoutes(apiV1)
	patients.NewHandler(patients.NewService(st)).RegisterRoutes(apiV1)
	appointments.NewHandler(appointments.NewService(st)).RegisterRoutes(apiV1)
	pharmacy.NewHandler(pharmacy.NewService(st)).RegisterRoutes(apiV1)
	labreports.NewHandler(labreports.NewService(st)).RegisterRoutes(apiV1)
	billing.NewHandler(billing.NewService(st)).RegisterRoutes(apiV1)

	adminGroup := apiV1.Group("", auth.RequireRole("admin"))
	admin.NewHandler(st).RegisterRoutes(adminGroup)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
