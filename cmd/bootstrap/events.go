package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"dealswap/internal/infra/events"
	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/metrics"
	"dealswap/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		metrics.NewRegistry,
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when KAFKA_BROKERS is empty.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, reg *metrics.Registry) (shared.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("event publishing disabled: no kafka brokers configured")
		return events.NopPublisher{}, nil
	}

	client, err := events.NewKafkaClient(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := events.EnsureTopic(ctx, client, cfg.Kafka); err != nil {
				// the broker may auto-create topics; publishing failures are logged per event
				slog.Warn("failed to ensure event topic", "topic", cfg.Kafka.Topic, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			client.Close()
			return nil
		},
	})

	return events.NewKafkaPublisher(client, cfg.Kafka.Topic, reg), nil
}
