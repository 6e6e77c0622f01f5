package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/cmsquery"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/httpclient"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/logger"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/pagination"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/tracing"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/cache"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
)

const upstreamName = "content-service"

// maxBodyBytes caps how much of a content response is read.
const maxBodyBytes = 8 << 20

// TTLs are the cache lifetimes per content family.
type TTLs struct {
	Landing time.Duration
	Product time.Duration
	Global  time.Duration
}

// DefaultTTLs returns 60s for the landing page and 300s otherwise.
func DefaultTTLs() TTLs {
	return TTLs{Landing: 60 * time.Second, Product: 300 * time.Second, Global: 300 * time.Second}
}

// ContentClient fetches content from the content service. Every method fails
// soft: transport errors, non-2xx responses, undecodable bodies and an open
// circuit are logged and surface as empty or nil results. Nothing is retried.
type ContentClient struct {
	baseURL string
	http    *httpclient.CircuitBreakerClient
	cache   cache.Store
	ttl     TTLs
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewContentClient creates a client for the content service at baseURL.
// A nil store disables caching.
func NewContentClient(baseURL string, hc *httpclient.CircuitBreakerClient, store cache.Store, ttl TTLs, logger *slog.Logger) *ContentClient {
	if store == nil {
		store = cache.Noop{}
	}
	return &ContentClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
		cache:   store,
		ttl:     ttl,
		tracer:  tracing.Tracer("services/storefront/client"),
		logger:  logger,
	}
}

// Collection returns one page of products. On failure it returns no products
// and zero-total pagination for the requested page.
func (c *ContentClient) Collection(ctx context.Context, q CollectionQuery) ProductList {
	var env listEnvelope[domain.Product]
	if err := c.get(ctx, cache.TagProducts, c.ttl.Product, PathProducts, q.Query(), &env); err != nil {
		c.logFailure(ctx, PathProducts, err)
		return ProductList{Products: []domain.Product{}, Meta: pagination.NewMeta(0, q.Params())}
	}
	if env.Data == nil {
		env.Data = []domain.Product{}
	}
	return ProductList{Products: env.Data, Meta: env.Meta.Pagination}
}

// Product returns the first product matching q, or nil.
func (c *ContentClient) Product(ctx context.Context, q ProductQuery) *domain.Product {
	var env listEnvelope[domain.Product]
	if err := c.get(ctx, cache.TagProducts, c.ttl.Product, PathProducts, q.Query(), &env); err != nil {
		c.logFailure(ctx, PathProducts, err)
		return nil
	}
	if len(env.Data) == 0 {
		return nil
	}
	return &env.Data[0]
}

// Global returns the site furniture, or nil.
func (c *ContentClient) Global(ctx context.Context) *domain.Global {
	var env singleEnvelope[domain.Global]
	if err := c.get(ctx, cache.TagGlobal, c.ttl.Global, PathGlobal, cmsquery.Query{}, &env); err != nil {
		c.logFailure(ctx, PathGlobal, err)
		return nil
	}
	return env.Data
}

// LandingPage returns the landing page, or nil.
func (c *ContentClient) LandingPage(ctx context.Context) *domain.LandingPage {
	var env singleEnvelope[domain.LandingPage]
	if err := c.get(ctx, cache.TagLandingPage, c.ttl.Landing, PathLandingPage, cmsquery.Query{}, &env); err != nil {
		c.logFailure(ctx, PathLandingPage, err)
		return nil
	}
	return env.Data
}

// get decodes the response for path?q into dst, serving from and filling the
// cache. Only responses that decoded cleanly are cached.
func (c *ContentClient) get(ctx context.Context, tag string, ttl time.Duration, path string, q cmsquery.Query, dst any) error {
	target := c.baseURL + path
	if rawQuery := q.Encode(); rawQuery != "" {
		target += "?" + rawQuery
	}
	key := strings.TrimPrefix(target, c.baseURL)

	if body, ok := c.cache.Get(ctx, tag, key); ok {
		if err := json.Unmarshal(body, dst); err == nil {
			return nil
		}
	}

	ctx, span := c.tracer.Start(ctx, "content.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("content.path", path)),
	)
	defer span.End()

	body, err := c.fetch(ctx, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		span.SetStatus(codes.Error, "decode")
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	if ttl > 0 {
		c.cache.Set(ctx, tag, key, body, ttl)
	}
	return nil
}

func (c *ContentClient) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
	tracing.InjectHTTP(ctx, req.Header)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, httpclient.ParseResponseError(resp, upstreamName)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read content response: %w", err)
	}
	return body, nil
}

func (c *ContentClient) logFailure(ctx context.Context, path string, err error) {
	logger.WithContext(ctx, c.logger).WarnContext(ctx, "content fetch failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}
