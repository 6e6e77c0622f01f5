package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	pkgkafka "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/kafka"
)

// ConsumerGroupID is the default consumer group of the storefront.
const ConsumerGroupID = "storefront"

// idempotencyTTL bounds how long processed event IDs are remembered.
const idempotencyTTL = 24 * time.Hour

// Invalidator drops cached content by tag.
type Invalidator interface {
	InvalidateTags(ctx context.Context, tags ...string) (int, error)
}

// contentChangedPayload mirrors the data of a content.changed event.
type contentChangedPayload struct {
	Action string   `json:"action"`
	Model  string   `json:"model"`
	Tags   []string `json:"tags"`
}

// ContentChangedHandler invalidates cached responses when the CMS reports a
// change.
type ContentChangedHandler struct {
	cache  Invalidator
	logger *slog.Logger
}

// NewContentChangedHandler creates a handler that invalidates through cache.
func NewContentChangedHandler(cache Invalidator, logger *slog.Logger) *ContentChangedHandler {
	return &ContentChangedHandler{cache: cache, logger: logger}
}

// Handle processes one event. Events of other types are ignored.
func (h *ContentChangedHandler) Handle(ctx context.Context, event *pkgkafka.Event) error {
	if event.EventType != pkgkafka.EventContentChanged {
		h.logger.WarnContext(ctx, "unknown event type received",
			slog.String("event_type", event.EventType),
			slog.String("event_id", event.EventID),
		)
		return nil
	}

	var payload contentChangedPayload
	if err := event.UnmarshalData(&payload); err != nil {
		// A malformed payload will never succeed; drop it.
		h.logger.ErrorContext(ctx, "invalid content.changed payload",
			slog.String("event_id", event.EventID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if len(payload.Tags) == 0 {
		return nil
	}

	removed, err := h.cache.InvalidateTags(ctx, payload.Tags...)
	if err != nil {
		return fmt.Errorf("invalidate %v: %w", payload.Tags, err)
	}

	h.logger.InfoContext(ctx, "content cache invalidated",
		slog.String("model", payload.Model),
		slog.String("action", payload.Action),
		slog.Any("tags", payload.Tags),
		slog.Int("entries", removed),
	)
	return nil
}

// NewContentConsumer wires handler behind an idempotency check into a
// consumer of the content.changed topic. dlq may be nil.
func NewContentConsumer(brokers []string, groupID string, handler *ContentChangedHandler, store pkgkafka.IdempotencyStore, dlq *pkgkafka.DLQProducer, logger *slog.Logger) *pkgkafka.Consumer {
	if groupID == "" {
		groupID = ConsumerGroupID
	}
	return pkgkafka.NewConsumer(pkgkafka.ConsumerConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   pkgkafka.TopicContentChanged,
		DLQ:     dlq,
	}, pkgkafka.IdempotentHandler(store, handler.Handle, logger), logger)
}

// NewIdempotencyStore returns the Redis-backed store used by the content
// consumer, or an in-memory one when client is nil.
func NewIdempotencyStore(client redis.UniversalClient) pkgkafka.IdempotencyStore {
	if client == nil {
		return pkgkafka.NewMemoryIdempotencyStore(idempotencyTTL)
	}
	return pkgkafka.NewRedisIdempotencyStore(client, "storefront:events", idempotencyTTL)
}
