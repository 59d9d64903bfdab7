// Package app wires the storefront together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/timursarsembai/crochet-shop/internal/config"
	"github.com/timursarsembai/crochet-shop/internal/event"
	httphandler "github.com/timursarsembai/crochet-shop/internal/handler/http"
	"github.com/timursarsembai/crochet-shop/internal/repository"
	"github.com/timursarsembai/crochet-shop/internal/repository/memory"
	postgresrepo "github.com/timursarsembai/crochet-shop/internal/repository/postgres"
	redisrepo "github.com/timursarsembai/crochet-shop/internal/repository/redis"
	"github.com/timursarsembai/crochet-shop/internal/service"
	"github.com/timursarsembai/crochet-shop/pkg/database"
	"github.com/timursarsembai/crochet-shop/pkg/health"
	"github.com/timursarsembai/crochet-shop/pkg/kafka"
	"github.com/timursarsembai/crochet-shop/pkg/logger"
	"github.com/timursarsembai/crochet-shop/pkg/middleware"
	"github.com/timursarsembai/crochet-shop/pkg/tracing"
)

// App holds the assembled storefront and its owned resources.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server

	redis          *goredis.Client
	producer       *kafka.Producer
	checkout       *service.CheckoutService
	tracerShutdown func(context.Context) error
}

// New assembles the storefront from configuration.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	slog.SetDefault(log)

	a := &App{cfg: cfg, logger: log}

	if cfg.Telemetry.TracingEnabled {
		shutdown, err := tracing.Init(ctx, cfg.ServiceName, cfg.Telemetry.OTLPEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		a.tracerShutdown = shutdown
	}

	redisCfg := database.DefaultRedisConfig(cfg.Redis.Addr)
	redisCfg.Password = cfg.Redis.Password
	redisCfg.DB = cfg.Redis.DB

	redisClient, err := database.NewRedisClient(ctx, redisCfg)
	if err != nil {
		return nil, err
	}
	a.redis = redisClient

	catalog, err := a.buildCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var events event.Publisher = event.NoopPublisher{}
	if cfg.Kafka.Enabled {
		a.producer = kafka.NewProducer(kafka.DefaultProducerConfig(cfg.Kafka.Brokers), log)
		events = event.NewKafkaPublisher(a.producer, log)
	}

	ttl := cfg.Redis.SessionTTL
	carts := redisrepo.NewCartRepository(redisClient, ttl)
	wishlists := redisrepo.NewWishlistRepository(redisClient, ttl)
	orders := redisrepo.NewOrderRepository(redisClient, ttl)
	navs := redisrepo.NewNavigationRepository(redisClient, ttl)

	catalogSvc := service.NewCatalogService(catalog, log)
	cartSvc := service.NewCartService(carts, catalog, events, log)
	wishlistSvc := service.NewWishlistService(wishlists, catalog, cartSvc, events, log)
	checkoutSvc := service.NewCheckoutService(orders, navs, cartSvc, events, log,
		cfg.Checkout.ProcessingDelay, cfg.Checkout.RedirectDelay)
	navSvc := service.NewNavigationService(navs, catalog, cartSvc, log)
	navSvc.BindCheckout(checkoutSvc)
	inquirySvc := service.NewInquiryService(events, log)
	a.checkout = checkoutSvc

	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	if a.producer != nil {
		healthHandler.Register("kafka", a.producer.Ping)
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.HTTP.AllowedOrigins

	router := httphandler.NewRouter(httphandler.RouterDeps{
		ServiceName: cfg.ServiceName,
		Logger:      log,
		CORS:        corsCfg,
		Catalog:     httphandler.NewCatalogHandler(catalogSvc, log),
		Cart:        httphandler.NewCartHandler(cartSvc, log),
		Wishlist:    httphandler.NewWishlistHandler(wishlistSvc, log),
		Checkout:    httphandler.NewCheckoutHandler(checkoutSvc, log),
		Navigation:  httphandler.NewNavigationHandler(navSvc, log),
		Inquiry:     httphandler.NewInquiryHandler(inquirySvc, log),
		Health:      healthHandler,
	})

	a.server = &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return a, nil
}

func (a *App) buildCatalog(ctx context.Context) (repository.ProductRepository, error) {
	switch a.cfg.Catalog.Backend {
	case config.CatalogPostgres:
		pgCfg := database.DefaultPostgresConfig()
		pgCfg.Host = a.cfg.Postgres.Host
		pgCfg.Port = a.cfg.Postgres.Port
		pgCfg.User = a.cfg.Postgres.User
		pgCfg.Password = a.cfg.Postgres.Password
		pgCfg.Database = a.cfg.Postgres.Database
		pgCfg.SSLMode = a.cfg.Postgres.SSLMode

		pool, err := database.NewPostgresPool(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		return postgresrepo.NewCatalogRepository(pool), nil
	default:
		return memory.NewCatalogRepository(), nil
	}
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", slog.String("addr", a.cfg.HTTP.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-sigCh:
		a.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return a.Shutdown(ctx)
}

// Shutdown stops the server and releases owned resources.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}

	a.checkout.Stop()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka producer: %w", err))
		}
	}

	if err := a.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close redis client: %w", err))
	}

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracer: %w", err))
		}
	}

	a.logger.Info("shutdown complete")
	return errors.Join(errs...)
}
