package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/database"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/health"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/httpclient"
	pkgkafka "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/kafka"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/tracing"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/cache"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/client"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/config"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/event"
	handler "github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/handler/http"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/service"
)

// App wires together all dependencies and runs the storefront.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	redis          *redis.Client
	producer       *pkgkafka.Producer
	consumer       *pkgkafka.Consumer
	dlq            *pkgkafka.DLQProducer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
	stop           context.CancelFunc
}

// NewApp creates a new application instance. Redis is optional: when it is
// disabled or unreachable the storefront runs uncached and without cache
// invalidation.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceCfg := tracing.DefaultConfig("storefront")
	traceCfg.Environment = cfg.Environment
	traceCfg.OTLPEndpoint = cfg.OTELEndpoint
	traceCfg.SampleRate = cfg.OTELSampleRate
	traceCfg.Enabled = cfg.OTELEnabled
	tracerShutdown, err := tracing.InitTracer(ctx, traceCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	a := &App{cfg: cfg, logger: logger, tracerShutdown: tracerShutdown}
	healthHandler := health.NewHandler()

	var store cache.Store = cache.Noop{}
	if cfg.CacheEnabled {
		rdb, err := database.NewRedisClient(ctx, cfg.Redis())
		if err != nil {
			logger.Warn("redis unavailable, response cache disabled", slog.String("error", err.Error()))
		} else {
			a.redis = rdb
			store = cache.NewRedisCache(rdb, logger)
			healthHandler.RegisterNonCritical("redis", database.RedisHealthCheck(rdb))
			logger.Info("response cache enabled", slog.String("redis", cfg.Redis().Addr()))
		}
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.ContentTimeout
	httpCfg.UserAgent = "storefront"
	contentHTTP := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpCfg),
		httpclient.DefaultCircuitBreakerConfig("content-service"),
		logger,
	)
	// Readiness probes bypass the breaker so they do not count against it.
	pingHTTP := httpclient.New(httpCfg)
	content := client.NewContentClient(cfg.ContentServiceURL, contentHTTP, store, client.TTLs{
		Landing: cfg.LandingRevalidate,
		Product: cfg.ProductRevalidate,
		Global:  cfg.GlobalRevalidate,
	}, logger)
	healthHandler.RegisterNonCritical("content", contentPing(pingHTTP, cfg.ContentServiceURL))

	a.producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	healthHandler.RegisterNonCritical("kafka", a.producer.Ping)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	if a.redis != nil {
		a.dlq = pkgkafka.NewDLQProducer(cfg.KafkaBrokers, logger)
		a.consumer = event.NewContentConsumer(
			cfg.KafkaBrokers,
			cfg.KafkaGroupID,
			event.NewContentChangedHandler(store, logger),
			event.NewIdempotencyStore(a.redis),
			a.dlq,
			logger,
		)
	}

	pages := service.NewPageService(content, event.NewProducer(a.producer, logger), service.Options{
		MediaBaseURL: cfg.MediaBaseURL,
		PageSize:     cfg.CollectionPageSize,
	}, logger)

	runCtx, stop := context.WithCancel(context.Background())
	a.stop = stop
	router := handler.NewRouter(runCtx, cfg, handler.NewPageHandler(pages, logger), healthHandler, logger)

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

// contentPing checks that the content gateway answers its liveness probe.
func contentPing(c *httpclient.Client, baseURL string) health.Checker {
	return func(ctx context.Context) error {
		resp, err := c.Get(ctx, strings.TrimSuffix(baseURL, "/")+"/health/live")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("content service returned status %d", resp.StatusCode)
		}
		return nil
	}
}

// Run starts the HTTP server and the invalidation consumer and blocks until
// the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	if a.consumer != nil {
		go func() {
			if err := a.consumer.Start(ctx); err != nil {
				a.logger.Error("content consumer stopped", slog.String("error", err.Error()))
			}
		}()
	}

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
			slog.String("content", a.cfg.ContentServiceURL),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown drains HTTP requests, stops Kafka clients, closes Redis and
// flushes spans.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}
	a.stop()

	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			a.logger.Error("kafka consumer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}
	if a.dlq != nil {
		if err := a.dlq.Close(); err != nil {
			a.logger.Error("kafka dlq close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
