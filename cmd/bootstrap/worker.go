package bootstrap

import (
	"context"

	"dealswap/internal/pkg/config"
	"dealswap/internal/usecase/commands"
	"dealswap/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(trades commands.TradeCommands, cfg config.Config) *worker.ExpirySweeper {
			return worker.NewExpirySweeper(trades, cfg.Trade.SweepInterval)
		},
	),
	fx.Invoke(startExpirySweeper),
)

func startExpirySweeper(lc fx.Lifecycle, sweeper *worker.ExpirySweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
