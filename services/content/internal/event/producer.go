package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	pkgkafka "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/kafka"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/logger"
)

// Aggregate type and source of content events.
const (
	AggregateTypeContent = "content"
	SourceContentService = "content-service"
)

// Cache tags understood by the storefront response cache.
const (
	TagGlobal      = "global"
	TagLandingPage = "landing-page"
	TagProducts    = "products"
)

// AllTags lists every cache tag.
var AllTags = []string{TagGlobal, TagLandingPage, TagProducts}

var modelTags = map[string][]string{
	"global":          {TagGlobal},
	"banner":          {TagGlobal},
	"navbar":          {TagGlobal},
	"footer":          {TagGlobal},
	"landing-page":    {TagLandingPage},
	"product":         {TagProducts},
	"product-variant": {TagProducts},
	"category":        {TagProducts},
	"color":           {TagProducts},
	"size":            {TagProducts},
	"review":          {TagProducts},
}

// TagsForModel maps a CMS model name to the cache tags its changes affect.
// Unknown models, including media uploads, affect every tag.
func TagsForModel(model string) []string {
	if tags, ok := modelTags[model]; ok {
		return tags
	}
	return AllTags
}

// ContentChangedData is the payload of a content.changed event.
type ContentChangedData struct {
	Action  string   `json:"action"`
	Model   string   `json:"model"`
	UID     string   `json:"uid,omitempty"`
	EntryID int      `json:"entry_id,omitempty"`
	Tags    []string `json:"tags"`
}

// Producer publishes content events to Kafka.
type Producer struct {
	publisher pkgkafka.Publisher
	logger    *slog.Logger
}

// NewProducer creates a content event producer.
func NewProducer(publisher pkgkafka.Publisher, logger *slog.Logger) *Producer {
	return &Producer{publisher: publisher, logger: logger}
}

// PublishContentChanged publishes a content.changed event for one CMS entry.
func (p *Producer) PublishContentChanged(ctx context.Context, data ContentChangedData) error {
	if len(data.Tags) == 0 {
		data.Tags = TagsForModel(data.Model)
	}

	aggregateID := data.Model
	if data.EntryID > 0 {
		aggregateID = data.Model + ":" + strconv.Itoa(data.EntryID)
	}

	event, err := pkgkafka.NewEvent(pkgkafka.EventContentChanged, aggregateID, AggregateTypeContent, SourceContentService, data)
	if err != nil {
		return fmt.Errorf("create content.changed event: %w", err)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		event.WithCorrelationID(id)
	}

	if err := p.publisher.Publish(ctx, pkgkafka.TopicContentChanged, event); err != nil {
		return fmt.Errorf("publish content.changed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published content.changed event",
		slog.String("model", data.Model),
		slog.String("action", data.Action),
		slog.Any("tags", data.Tags),
	)
	return nil
}
