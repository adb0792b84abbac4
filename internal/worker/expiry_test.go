//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealswap/internal/worker"
	commandsmock "dealswap/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestExpirySweeper_Sweep(t *testing.T) {
	t.Run("drains full batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		trades := commandsmock.NewMockTradeCommands(ctrl)
		gomock.InOrder(
			trades.EXPECT().ExpireTrades(gomock.Any(), 100).Return(100, nil),
			trades.EXPECT().ExpireTrades(gomock.Any(), 100).Return(7, nil),
		)

		got := worker.NewExpirySweeper(trades, time.Minute).Sweep(context.Background())
		assert.Equal(t, 107, got)
	})

	t.Run("stops on error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		trades := commandsmock.NewMockTradeCommands(ctrl)
		trades.EXPECT().ExpireTrades(gomock.Any(), 100).Return(0, errors.New("db down")).Times(1)

		got := worker.NewExpirySweeper(trades, time.Minute).Sweep(context.Background())
		assert.Zero(t, got)
	})
}

func TestExpirySweeper_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	trades := commandsmock.NewMockTradeCommands(ctrl)
	trades.EXPECT().ExpireTrades(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.NewExpirySweeper(trades, 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
