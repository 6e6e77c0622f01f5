package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/health"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/middleware"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/config"
)

// NewRouter creates the storefront router. ctx bounds the rate limiter's
// background eviction.
func NewRouter(
	ctx context.Context,
	cfg *config.Config,
	pages *PageHandler,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)

	r.With(middleware.CacheControl(cfg.LandingRevalidate)).Get("/", pages.Landing)
	r.With(middleware.CacheControl(cfg.ProductRevalidate)).Get("/collections/{slug}", pages.Collection)

	r.Route("/products/{slug}", func(r chi.Router) {
		r.With(middleware.CacheControl(cfg.ProductRevalidate)).Get("/", pages.Product)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
			r.Post("/selection", pages.Select)
			r.Post("/restock-notifications", pages.RequestRestock)
		})
	})

	return r
}
