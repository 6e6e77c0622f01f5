package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/pagination"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/client"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/event"
)

// PlaceholderImage is shown for products without images.
const PlaceholderImage = "/placeholder-product.jpg"

// ContentSource fetches content. Implementations fail soft: errors surface as
// empty lists or nil values.
type ContentSource interface {
	Collection(ctx context.Context, q client.CollectionQuery) client.ProductList
	Product(ctx context.Context, q client.ProductQuery) *domain.Product
	Global(ctx context.Context) *domain.Global
	LandingPage(ctx context.Context) *domain.LandingPage
}

// RestockPublisher forwards restock notification requests.
type RestockPublisher interface {
	PublishRestockRequested(ctx context.Context, data event.RestockRequestedData) error
}

// Options configures a PageService.
type Options struct {
	MediaBaseURL string
	PageSize     int
}

// PageService composes page view models from content.
type PageService struct {
	content   ContentSource
	publisher RestockPublisher
	media     domain.MediaResolver
	pageSize  int
	logger    *slog.Logger
}

// NewPageService creates a page service. publisher may be nil, in which case
// restock requests are rejected as unavailable.
func NewPageService(content ContentSource, publisher RestockPublisher, opts Options, logger *slog.Logger) *PageService {
	return &PageService{
		content:   content,
		publisher: publisher,
		media:     domain.MediaResolver{Base: opts.MediaBaseURL},
		pageSize:  pagination.DefaultParams(opts.PageSize).PageSize,
		logger:    logger,
	}
}

// withGlobal runs primary while fetching the global furniture. The two are
// independent: either may come back empty without affecting the other.
func (s *PageService) withGlobal(ctx context.Context, primary func(ctx context.Context)) *GlobalView {
	var (
		g      errgroup.Group
		global *domain.Global
	)
	g.Go(func() error {
		global = s.content.Global(ctx)
		return nil
	})
	g.Go(func() error {
		primary(ctx)
		return nil
	})
	_ = g.Wait()

	return s.globalView(global)
}
