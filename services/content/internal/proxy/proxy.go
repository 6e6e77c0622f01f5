package proxy

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/httpclient"
	pkghttputil "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/httputil"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/logger"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/middleware"
)

// Config holds the upstream address and transport limits.
type Config struct {
	UpstreamURL     string
	HealthPath      string
	DialTimeout     time.Duration
	ResponseTimeout time.Duration
	IdleTimeout     time.Duration
	MaxIdleConns    int
}

// CMSProxy forwards requests to the headless CMS.
type CMSProxy struct {
	target *url.URL
	proxy  *httputil.ReverseProxy
	health *httpclient.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a reverse proxy to cfg.UpstreamURL.
func New(cfg Config, l *slog.Logger) (*CMSProxy, error) {
	target, err := url.Parse(cfg.UpstreamURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if cfg.HealthPath == "" {
		cfg.HealthPath = "/_health"
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConns,
		IdleConnTimeout:       cfg.IdleTimeout,
		ResponseHeaderTimeout: cfg.ResponseTimeout,
	}

	p := &CMSProxy{
		target: target,
		cfg:    cfg,
		logger: l,
		health: httpclient.New(httpclient.Config{
			Timeout:         2 * time.Second,
			MaxConnsPerHost: 2,
			UserAgent:       "content-gateway-health",
		}),
	}
	p.proxy = &httputil.ReverseProxy{
		Rewrite:      p.rewrite,
		Transport:    transport,
		ErrorHandler: p.errorHandler,
	}

	l.Info("registered cms proxy", slog.String("target", target.String()))
	return p, nil
}

func (p *CMSProxy) rewrite(pr *httputil.ProxyRequest) {
	pr.SetURL(p.target)
	pr.SetXForwarded()
	pr.Out.Host = p.target.Host

	if id := logger.CorrelationIDFromContext(pr.In.Context()); id != "" {
		pr.Out.Header.Set(middleware.CorrelationIDHeader, id)
	}
	otel.GetTextMapPropagator().Inject(pr.In.Context(), propagation.HeaderCarrier(pr.Out.Header))
}

// ServeHTTP proxies r to the CMS.
func (p *CMSProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.proxy.ServeHTTP(w, r)
}

func (p *CMSProxy) errorHandler(w http.ResponseWriter, r *http.Request, err error) {
	logger.WithContext(r.Context(), p.logger).ErrorContext(r.Context(), "proxy error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)

	pkghttputil.WriteJSON(w, http.StatusBadGateway, pkghttputil.Response{
		Error: &pkghttputil.ErrorResponse{
			Code:      "BAD_GATEWAY",
			Message:   "content upstream unavailable",
			RequestID: logger.CorrelationIDFromContext(r.Context()),
		},
	})
}

// Ping checks the CMS health endpoint. Any 2xx counts as healthy.
func (p *CMSProxy) Ping(ctx context.Context) error {
	u := p.target.JoinPath(p.cfg.HealthPath)
	resp, err := p.health.Get(ctx, u.String())
	if err != nil {
		return fmt.Errorf("cms unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.ServiceUnavailable(fmt.Sprintf("cms health returned %d", resp.StatusCode))
	}
	return nil
}
