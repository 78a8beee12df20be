package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"house-price/internal/config"
	"house-price/internal/history"
	"house-price/internal/location"
	"house-price/internal/model"
	"house-price/internal/prediction"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// HistoryLister lists stored predictions
type HistoryLister interface {
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// Services are the business-layer dependencies of the HTTP layer
type Services struct {
	Locations   location.Service
	Predictions prediction.Service
	Model       model.Info
	History     HistoryLister // nil when history is disabled
}

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	logger            *slog.Logger
	cfg               *config.Config
	locationService   location.Service
	predictionService prediction.Service
	modelInfo         model.Info
	history           HistoryLister
	closers           []func() error
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	regressor, err := model.NewLoader(logger).Load(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	if err := prediction.CheckSchema(regressor); err != nil {
		logger.Warn("model schema does not match the form", "error", err)
	}

	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	cache, err := newGeocodeCache(cfg.Cache, logger)
	if err != nil {
		return nil, err
	}
	if c, ok := cache.(*location.RedisCache); ok {
		closers = append(closers, c.Close)
	}

	locationSvc := location.NewLocationService(cfg.Geocoder, cache, logger)

	services := Services{
		Locations: locationSvc,
		Model:     regressor.Info(),
	}

	var recorder prediction.Recorder
	if cfg.History.Enabled {
		db, err := history.Open(cfg.History.DSN, cfg.History.MaxConnections)
		if err != nil {
			closeAll()
			return nil, err
		}
		repo := history.NewRepository(db)
		closers = append(closers, repo.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.Migrate(ctx); err != nil {
			closeAll()
			return nil, err
		}

		recorder = repo
		services.History = repo
		logger.Info("prediction history enabled")
	}

	services.Predictions = prediction.NewPredictionService(locationSvc, regressor, recorder, cfg.App, logger)

	app := NewAppWithServices(cfg, logger, services)
	app.closers = closers
	return app, nil
}

// NewAppWithServices builds the HTTP layer around ready-made services
// This is useful for testing with mock services
func NewAppWithServices(cfg *config.Config, logger *slog.Logger, services Services) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if cfg.Metrics.Enabled {
		router.Use(requestMetrics())
	}
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	app := &App{
		router:            router,
		logger:            logger,
		cfg:               cfg,
		locationService:   services.Locations,
		predictionService: services.Predictions,
		modelInfo:         services.Model,
		history:           services.History,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// corsConfig allows every origin when the list is empty or contains "*"
func corsConfig(origins []string) cors.Config {
	conf := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	conf.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	conf.AllowHeaders = []string{"Content-Type", requestIDHeader}
	conf.ExposeHeaders = []string{requestIDHeader}
	conf.MaxAge = 12 * time.Hour
	return conf
}

func newGeocodeCache(cfg config.CacheConfig, logger *slog.Logger) (location.Cache, error) {
	if !strings.EqualFold(cfg.Backend, config.CacheBackendRedis) {
		return location.NewMemoryCache(), nil
	}

	cache := location.NewRedisCache(redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}), cfg.Redis.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, err
	}

	logger.Info("using redis geocode cache", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	return cache, nil
}

// Handler exposes the router, mostly for tests
func (app *App) Handler() http.Handler {
	return app.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close releases the cache and database connections
func (app *App) Close() {
	for _, c := range app.closers {
		if err := c(); err != nil {
			app.logger.Warn("failed to close resource", "error", err)
		}
	}
	app.closers = nil
}
