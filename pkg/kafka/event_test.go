package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changedPayload struct {
	Model string `json:"model"`
}

func TestNewEvent_Fields(t *testing.T) {
	ev, err := NewEvent(EventContentChanged, "api::product.product:42", "product", "content", changedPayload{Model: "product"})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, EventContentChanged, ev.EventType)
	assert.Equal(t, "api::product.product:42", ev.AggregateID)
	assert.Equal(t, 1, ev.Version)
	assert.Equal(t, "content", ev.Source)
	assert.WithinDuration(t, time.Now().UTC(), ev.Timestamp, time.Second)
	assert.JSONEq(t, `{"model":"product"}`, string(ev.Data))
}

func TestNewEvent_InvalidData(t *testing.T) {
	_, err := NewEvent("x", "1", "t", "s", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal x payload")
}

func TestEvent_RoundTripWithMetadata(t *testing.T) {
	ev, err := NewEvent(EventRestockRequested, "product-1", "product", "storefront", map[string]int{"size_id": 3})
	require.NoError(t, err)
	ev.WithCorrelationID("corr-1").WithMetadata("gender", "men")

	data, err := ev.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalEvent(data)
	require.NoError(t, err)
	assert.Equal(t, ev.EventID, got.EventID)
	assert.Equal(t, "corr-1", got.CorrelationID)
	assert.Equal(t, "men", got.Metadata["gender"])

	var payload map[string]int
	require.NoError(t, got.UnmarshalData(&payload))
	assert.Equal(t, 3, payload["size_id"])
}

func TestUnmarshalEvent_Rejects(t *testing.T) {
	for _, raw := range []string{``, `{bad`, `{"event_id":"1"}`} {
		_, err := UnmarshalEvent([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "ecommerce.content.changed", TopicContentChanged)
	assert.Equal(t, "ecommerce.restock.requested", TopicRestockRequested)
	assert.Equal(t, "ecommerce.dlq.ecommerce.content.changed", DLQTopic(TopicContentChanged))
}
