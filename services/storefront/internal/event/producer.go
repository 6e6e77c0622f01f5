package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/kafka"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/logger"
)

// Aggregate type and source of storefront events.
const (
	AggregateTypeProduct    = "product"
	SourceStorefrontService = "storefront"
)

// RestockRequestedData is the payload of a storefront.restock.requested
// event.
type RestockRequestedData struct {
	ProductID   int    `json:"product_id"`
	ProductSlug string `json:"product_slug"`
	Gender      string `json:"gender"`
	VariantID   int    `json:"variant_id"`
	ColorID     int    `json:"color_id"`
	SizeID      int    `json:"size_id"`
	Email       string `json:"email"`
}

// Producer publishes storefront events to Kafka.
type Producer struct {
	publisher pkgkafka.Publisher
	logger    *slog.Logger
}

// NewProducer creates a storefront event producer.
func NewProducer(publisher pkgkafka.Publisher, logger *slog.Logger) *Producer {
	return &Producer{publisher: publisher, logger: logger}
}

// PublishRestockRequested publishes a request to be notified when a size
// comes back in stock.
func (p *Producer) PublishRestockRequested(ctx context.Context, data RestockRequestedData) error {
	aggregateID := fmt.Sprintf("%d:%d:%d", data.ProductID, data.ColorID, data.SizeID)

	event, err := pkgkafka.NewEvent(pkgkafka.EventRestockRequested, aggregateID, AggregateTypeProduct, SourceStorefrontService, data)
	if err != nil {
		return fmt.Errorf("create restock event: %w", err)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		event.WithCorrelationID(id)
	}

	if err := p.publisher.Publish(ctx, pkgkafka.TopicRestockRequested, event); err != nil {
		return fmt.Errorf("publish restock event: %w", err)
	}

	p.logger.InfoContext(ctx, "restock notification requested",
		slog.Int("product_id", data.ProductID),
		slog.Int("variant_id", data.VariantID),
		slog.Int("size_id", data.SizeID),
	)
	return nil
}
