//go:build unit

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/metrics"
	"dealswap/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestEncodeRecord(t *testing.T) {
	e := shared.Event{
		Type:        shared.EventTradeConfirmed,
		AggregateID: "5f1c1a4e-8d7e-4c55-9b43-3f3c6d1f2a10",
		OccurredAt:  time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		Payload:     map[string]any{"state": "confirmed"},
	}

	record, err := encodeRecord("dealswap.events", e)

	require.NoError(t, err)
	assert.Equal(t, "dealswap.events", record.Topic)
	assert.Equal(t, []byte(e.AggregateID), record.Key)
	assert.Equal(t, []byte(shared.EventTradeConfirmed), headerValue(record, headerEventType))

	var decoded shared.Event
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	assert.Equal(t, e.Type, decoded.Type)
	assert.True(t, e.OccurredAt.Equal(decoded.OccurredAt))
	assert.Equal(t, "confirmed", decoded.Payload["state"])
}

func TestEncodeRecord_UnencodablePayload(t *testing.T) {
	_, err := encodeRecord("t", shared.Event{Type: "x", Payload: map[string]any{"ch": make(chan int)}})
	assert.Error(t, err)
}

func TestHeaderValue_Missing(t *testing.T) {
	assert.Nil(t, headerValue(nil, headerEventType))
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), shared.Event{Type: shared.EventDealIssued}))
}

func TestKafkaPublisher_UnreachableBrokerFails(t *testing.T) {
	cfg := config.KafkaConfig{
		Brokers:         []string{"127.0.0.1:1"},
		Topic:           "dealswap.events",
		DeliveryTimeout: time.Second,
	}
	client, err := NewKafkaClient(cfg)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	pub := NewKafkaPublisher(client, cfg.Topic, metrics.NewRegistry())

	done := make(chan error, 1)
	go func() {
		done <- pub.Publish(context.Background(), shared.Event{Type: shared.EventItemClaimed, AggregateID: "c-2001"})
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, kgo.ErrRecordTimeout)
	case <-time.After(10 * time.Second):
		t.Fatal("publish did not give up on an unreachable broker")
	}
}
