package components

import (
	"dealswap/internal/domain/trade"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/password"
	"dealswap/internal/usecase"
	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/queries"
	"dealswap/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewDefaultHasher,
	NewCalendar,
	NewBudgetPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewDealCommands,
		func(uow shared.UnitOfWork, policy trade.BudgetPolicy, clk clock.Clock, pub shared.EventPublisher, cfg config.Config) commands.TradeCommands {
			return commands.NewTradeCommands(uow, policy, cfg.Trade.TTL, clk, pub)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		func(store queries.DealReadStore, cfg config.Config) queries.DealQueries {
			return queries.NewDealQueries(store, cfg.Deal.BatchSize)
		},
		queries.NewTradeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCalendar(cfg config.Config) (clock.Calendar, error) {
	loc, err := cfg.Deal.Location()
	if err != nil {
		return clock.Calendar{}, err
	}
	return clock.NewCalendar(loc), nil
}

func NewBudgetPolicy(cfg config.Config, cal clock.Calendar) (trade.BudgetPolicy, error) {
	cadence, err := trade.NewResetCadence(cfg.Trade.BudgetReset)
	if err != nil {
		return trade.BudgetPolicy{}, err
	}
	return trade.NewBudgetPolicy(cfg.Trade.Budget, cadence, cal)
}
