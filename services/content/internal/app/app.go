package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/health"
	pkgkafka "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/kafka"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/tracing"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/config"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/event"
	handler "github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/handler/http"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/populate"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/proxy"
)

// App wires together all dependencies and runs the content gateway.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance: the CMS proxy, the webhook
// producer and the HTTP router.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceCfg := tracing.DefaultConfig("content")
	traceCfg.Environment = cfg.Environment
	traceCfg.OTLPEndpoint = cfg.OTELEndpoint
	traceCfg.SampleRate = cfg.OTELSampleRate
	traceCfg.Enabled = cfg.OTELEnabled
	tracerShutdown, err := tracing.InitTracer(ctx, traceCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	cms, err := proxy.New(proxy.Config{
		UpstreamURL:     cfg.CMSUpstreamURL,
		HealthPath:      cfg.CMSHealthPath,
		DialTimeout:     cfg.ProxyDialTimeout,
		ResponseTimeout: cfg.ProxyResponseTimeout,
		IdleTimeout:     cfg.ProxyIdleTimeout,
		MaxIdleConns:    cfg.ProxyMaxIdleConns,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create cms proxy: %w", err)
	}

	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	webhook := handler.NewWebhookHandler(event.NewProducer(producer, logger), cfg.WebhookToken, logger)

	// The gateway is useless without the CMS; a broker outage only delays
	// cache invalidation on the storefront.
	healthHandler := health.NewHandler()
	healthHandler.RegisterCritical("cms", cms.Ping)
	healthHandler.RegisterNonCritical("kafka", producer.Ping)

	router := handler.NewRouter(cfg, cms, webhook, healthHandler, logger)
	logger.Info("populate graphs registered", slog.Any("endpoints", populate.Endpoints()))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
			slog.String("upstream", a.cfg.CMSUpstreamURL),
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

// Shutdown drains HTTP requests, then closes the producer, then flushes spans.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		errs = append(errs, err)
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
