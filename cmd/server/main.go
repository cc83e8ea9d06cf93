package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/viiteer2708/mega-energia-sub001/config"
	"github.com/viiteer2708/mega-energia-sub001/internal/baseline"
	"github.com/viiteer2708/mega-energia-sub001/internal/database"
	"github.com/viiteer2708/mega-energia-sub001/internal/handlers"
	"github.com/viiteer2708/mega-energia-sub001/internal/middleware"
	"github.com/viiteer2708/mega-energia-sub001/internal/pipeline"
	"github.com/viiteer2708/mega-energia-sub001/internal/storage"
	"github.com/viiteer2708/mega-energia-sub001/internal/telemetry"
)

// @title Commission Service API
// @version 1.0
// @description Internal API for validating, exporting and templating commission-rate schedules.
// @BasePath /
// @securityDefinitions.apikey InternalAPIKey
// @in header
// @name X-Internal-API-Key
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)
	log.Logger = *logger

	logger.Info().Msg("Starting commission service")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Environment: cfg.Telemetry.Environment,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}

	store, err := openBaseline(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open baseline")
	}
	defer database.Close()

	archive, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open upload archive")
	}

	svc := pipeline.NewService(store, archive, pipeline.Options{
		ArchiveUploads: cfg.Import.ArchiveUploads,
	})

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(*logger))

	uploadLimits := middleware.DefaultRateLimiterConfig()
	uploadLimits.RequestsPerSecond = cfg.RateLimit.UploadsPerSecond
	uploadLimits.BurstSize = cfg.RateLimit.UploadBurst

	handlers.Register(ctx, router, handlers.NewScheduleHandler(svc, cfg.Import.MaxUploadBytes()), handlers.RouterOptions{
		InternalAPIKey:    cfg.Auth.InternalAPIKey,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Uploads:           uploadLimits,
	})

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Telemetry shutdown failed")
	}

	logger.Info().Msg("Server exited")
}

// openBaseline picks the baseline source: the database when configured,
// otherwise a YAML fixture, otherwise an empty in-memory store
func openBaseline(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (baseline.Store, error) {
	if cfg.Database.URL != "" {
		if err := database.Connect(ctx, cfg.Database.URL, database.PoolOptions{
			MaxConns:        cfg.Database.MaxConnections,
			MinConns:        cfg.Database.MinConnections,
			ConnMaxLifetime: cfg.Database.MaxConnLifetime,
			ConnMaxIdleTime: cfg.Database.MaxConnIdleTime,
		}); err != nil {
			return nil, err
		}
		logger.Info().Msg("Database connected")

		if cfg.Database.Migrate {
			if err := database.Migrate(ctx, database.Pool()); err != nil {
				return nil, err
			}
			logger.Info().Msg("Baseline schema applied")
		}
		return baseline.NewPostgresStore(database.Pool()), nil
	}

	if cfg.Import.BaselineFile != "" {
		store, err := baseline.LoadYAMLFile(cfg.Import.BaselineFile)
		if err != nil {
			return nil, err
		}
		companies, products, rates := store.Len()
		logger.Info().
			Str("file", cfg.Import.BaselineFile).
			Int("companies", companies).
			Int("products", products).
			Int("rates", rates).
			Msg("Loaded baseline fixture")
		return store, nil
	}

	logger.Warn().Msg("No database or baseline file configured; every schedule is treated as new")
	return baseline.NewMemoryStore(nil, nil, nil), nil
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "commission-service").Logger()
	return &logger
}
