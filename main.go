package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hospital-booking-server/internal/config"
	"hospital-booking-server/internal/logging"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/repository"
	"hospital-booking-server/internal/repository/memory"
	"hospital-booking-server/internal/routes"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hospital-booking-server",
		Short:        "Hospital appointment booking server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the booking server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer.Close()

			if cfg.Database.Driver == config.DriverMemory {
				logger.Info().Msg("memory driver selected, nothing to migrate")
				return nil
			}

			db, err := models.OpenDB(cfg.Database)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := models.Migrate(db); err != nil {
				return err
			}
			logger.Info().Str("driver", cfg.Database.Driver).Msg("migrations applied")
			return nil
		},
	}
}

// setup loads .env, the configuration and the logger shared by every command.
func setup() (*config.Config, zerolog.Logger, io.Closer, error) {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("load config: %w", err)
	}

	logger, closer := logging.New(cfg)
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded, using process environment")
	}
	if cfg.UsesDefaultSecret() {
		logger.Warn().Msg("SECRET_KEY is not set, sessions are signed with the built-in fallback key")
	}
	return cfg, logger, closer, nil
}

// openRepositories selects the storage backend. The returned func releases it.
func openRepositories(cfg *config.Config, logger zerolog.Logger) (*repository.Repositories, func() error, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn().Msg("using in-memory storage, data is lost on restart")
		return memory.New().Repositories(), func() error { return nil }, nil
	}

	db, err := models.OpenDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}
	if err := models.Migrate(db); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return repository.NewGorm(db), sqlDB.Close, nil
}

func newRouter(cfg *config.Config, repos *repository.Repositories, logger zerolog.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, repos, cfg, logger)
	return router
}

func runServer() error {
	cfg, logger, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info().
		Str("env", cfg.Environment).
		Str("driver", cfg.Database.Driver).
		Msg("hospital booking server startup")

	repos, release, err := openRepositories(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open storage")
		return err
	}
	defer release()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, repos, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
