package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/health"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/middleware"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/config"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/populate"
)

// NewRouter creates the content gateway router. The three endpoint families
// with fixed populate graphs get their populate middleware in front of the
// CMS proxy; every other /api path is forwarded unchanged.
func NewRouter(
	cfg *config.Config,
	cms http.Handler,
	webhook *WebhookHandler,
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
	r.Use(middleware.PrometheusMetrics("content"))
	r.Use(middleware.Tracing("content"))
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)

	r.With(middleware.NoStore).Post("/webhooks/content", webhook.Receive)

	r.Route("/api", func(r chi.Router) {
		global := populate.Middleware(populate.Global, logger)(cms)
		landing := populate.Middleware(populate.LandingPage, logger)(cms)
		products := populate.Middleware(populate.Product, logger)(cms)

		r.Handle("/global", global)
		r.Handle("/landing-page", landing)
		r.Handle("/products", products)
		r.Handle("/products/*", products)

		r.Handle("/*", cms)
	})

	return r
}
