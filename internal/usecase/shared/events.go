package shared

import (
	"context"
	"log/slog"
	"time"
)

const (
	EventDealIssued     = "deal.issued"
	EventItemClaimed    = "item.claimed"
	EventTradeProposed  = "trade.proposed"
	EventTradeConfirmed = "trade.confirmed"
	EventTradeCancelled = "trade.cancelled"
	EventTradeExpired   = "trade.expired"
)

type Event struct {
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// PublishTimeout bounds how long a request waits on the broker after its commit.
const PublishTimeout = 2 * time.Second

// PublishAfterCommit is best effort: committed state never depends on delivery.
// The caller's cancellation is ignored so a disconnecting client cannot drop events.
func PublishAfterCommit(ctx context.Context, pub EventPublisher, events ...Event) {
	if pub == nil || len(events) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	if err := pub.Publish(ctx, events...); err != nil {
		slog.Warn("failed to publish events", "count", len(events), "type", events[0].Type, "error", err.Error())
	}
}
