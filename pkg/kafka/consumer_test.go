package kafka

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventMessage(t *testing.T, topic string, ev *Event, offset int64) kafka.Message {
	t.Helper()
	data, err := ev.Marshal()
	require.NoError(t, err)
	return kafka.Message{Topic: topic, Value: data, Offset: offset}
}

func runConsumer(t *testing.T, c *Consumer, r *fakeReader, want int) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	require.Eventually(t, func() bool { return r.commits() >= want }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestConsumer_HandlesAndCommits(t *testing.T) {
	topic := "test.consumer.ok"
	ev := mustEvent(t, EventContentChanged, "global", map[string]string{"model": "global"})
	r := &fakeReader{queue: []kafka.Message{eventMessage(t, topic, ev, 7)}}

	var got *Event
	c := newConsumer(r, ConsumerConfig{Topic: topic, GroupID: "g"}, func(ctx context.Context, e *Event) error {
		got = e
		return nil
	}, testLogger())

	runConsumer(t, c, r, 1)

	require.NotNil(t, got)
	assert.Equal(t, ev.EventID, got.EventID)
	assert.Equal(t, int64(7), r.committed[0].Offset)
	assert.Equal(t, 1, r.closed)
	assert.Equal(t, float64(1), counterValue(t, "kafka_consumer_messages_processed_total", map[string]string{"topic": topic}))
}

func TestConsumer_CommitsMalformedMessages(t *testing.T) {
	topic := "test.consumer.malformed"
	r := &fakeReader{queue: []kafka.Message{{Topic: topic, Value: []byte("not json")}}}

	var calls atomic.Int32
	c := newConsumer(r, ConsumerConfig{Topic: topic, GroupID: "g"}, func(context.Context, *Event) error {
		calls.Add(1)
		return nil
	}, testLogger())

	runConsumer(t, c, r, 1)

	assert.Zero(t, calls.Load())
	assert.Equal(t, float64(1), counterValue(t, "kafka_consumer_messages_failed_total", map[string]string{"topic": topic}))
}

func TestConsumer_RetriesThenParksInDLQ(t *testing.T) {
	topic := "test.consumer.dlq"
	ev := mustEvent(t, EventContentChanged, "product", nil)
	r := &fakeReader{queue: []kafka.Message{eventMessage(t, topic, ev, 3)}}
	w := &fakeWriter{}

	var calls atomic.Int32
	c := newConsumer(r, ConsumerConfig{Topic: topic, GroupID: "storefront"}, func(context.Context, *Event) error {
		calls.Add(1)
		return errBoom
	}, testLogger())
	c.backoff = time.Millisecond
	c.dlq = &DLQProducer{writer: w, logger: testLogger()}

	runConsumer(t, c, r, 1)

	assert.Equal(t, int32(maxHandlerRetries), calls.Load())
	require.Len(t, w.msgs, 1)
	assert.Equal(t, DLQTopic(topic), w.msgs[0].Topic)
	assert.Equal(t, "boom", headerValue(w.msgs[0], "dlq.error"))
	assert.Equal(t, "storefront", headerValue(w.msgs[0], "dlq.consumer_group"))
	assert.Equal(t, "3", headerValue(w.msgs[0], "dlq.original_offset"))
}

func TestConsumer_RecoversOnRetry(t *testing.T) {
	topic := "test.consumer.retry"
	r := &fakeReader{queue: []kafka.Message{eventMessage(t, topic, mustEvent(t, "x", "1", nil), 0)}}

	var calls atomic.Int32
	c := newConsumer(r, ConsumerConfig{Topic: topic, GroupID: "g"}, func(context.Context, *Event) error {
		if calls.Add(1) == 1 {
			return errBoom
		}
		return nil
	}, testLogger())
	c.backoff = time.Millisecond

	runConsumer(t, c, r, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestConsumer_CloseIsIdempotent(t *testing.T) {
	r := &fakeReader{}
	c := newConsumer(r, ConsumerConfig{}, nil, testLogger())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, r.closed)
}
