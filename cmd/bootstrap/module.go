package bootstrap

import (
	"dealswap/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	EventsModule,
	components.UseCaseModule,
	JWTModule,
	components.PersistenceModule,
	components.HandlerModule,
	WorkerModule,
)
