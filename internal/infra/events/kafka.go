package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/metrics"
	"dealswap/internal/usecase/shared"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	clientID        = "dealswap-api"
	headerEventType = "event-type"
)

func NewKafkaClient(cfg config.KafkaConfig) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(clientID),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.RecordDeliveryTimeout(cfg.DeliveryTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}
	return client, nil
}

// EnsureTopic creates the event topic; an existing topic is fine.
func EnsureTopic(ctx context.Context, client *kgo.Client, cfg config.KafkaConfig) error {
	adm := kadm.NewClient(client)

	resp, err := adm.CreateTopics(ctx, cfg.Partitions, cfg.ReplicationFactor, nil, cfg.Topic)
	if err != nil {
		return fmt.Errorf("failed to create topic %s: %w", cfg.Topic, err)
	}
	for _, detail := range resp {
		if detail.Err != nil && !errors.Is(detail.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("failed to create topic %s: %w", detail.Topic, detail.Err)
		}
	}

	slog.Info("event topic ensured", "topic", cfg.Topic, "partitions", cfg.Partitions)
	return nil
}

// KafkaPublisher keys records by aggregate id so events of one item or trade stay ordered.
type KafkaPublisher struct {
	client  *kgo.Client
	topic   string
	metrics *metrics.Registry
}

func NewKafkaPublisher(client *kgo.Client, topic string, m *metrics.Registry) *KafkaPublisher {
	return &KafkaPublisher{client: client, topic: topic, metrics: m}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...shared.Event) error {
	records := make([]*kgo.Record, 0, len(events))
	for _, e := range events {
		record, err := encodeRecord(p.topic, e)
		if err != nil {
			p.metrics.EventPublished(e.Type, err)
			return err
		}
		records = append(records, record)
	}

	results := p.client.ProduceSync(ctx, records...)
	for _, r := range results {
		p.metrics.EventPublished(string(headerValue(r.Record, headerEventType)), r.Err)
	}
	return results.FirstErr()
}

func encodeRecord(topic string, e shared.Event) (*kgo.Record, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", e.Type, err)
	}
	return &kgo.Record{
		Topic:   topic,
		Key:     []byte(e.AggregateID),
		Value:   value,
		Headers: []kgo.RecordHeader{{Key: headerEventType, Value: []byte(e.Type)}},
	}, nil
}

func headerValue(r *kgo.Record, key string) []byte {
	if r == nil {
		return nil
	}
	for _, h := range r.Headers {
		if h.Key == key {
			return h.Value
		}
	}
	return nil
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...shared.Event) error {
	return nil
}
