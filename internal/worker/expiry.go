package worker

import (
	"context"
	"log/slog"
	"time"

	"dealswap/internal/usecase/commands"
)

const defaultSweepBatch = 100

// ExpirySweeper force-cancels overdue trade proposals on a fixed interval.
type ExpirySweeper struct {
	trades   commands.TradeCommands
	interval time.Duration
	batch    int
}

func NewExpirySweeper(trades commands.TradeCommands, interval time.Duration) *ExpirySweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpirySweeper{
		trades:   trades,
		interval: interval,
		batch:    defaultSweepBatch,
	}
}

// Run blocks until ctx is cancelled.
func (s *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep drains full batches so a backlog clears within one tick.
func (s *ExpirySweeper) Sweep(ctx context.Context) int {
	total := 0
	for ctx.Err() == nil {
		n, err := s.trades.ExpireTrades(ctx, s.batch)
		total += n
		if err != nil {
			slog.Warn("trade expiry sweep failed", "expired", total, "error", err.Error())
			break
		}
		if n < s.batch {
			break
		}
	}
	if total > 0 {
		slog.Info("expired stale trade proposals", "count", total)
	}
	return total
}
