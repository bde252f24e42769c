package bootstrap

import (
	"salon-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	RedisModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	WorkerModule,
	components.HandlerModule,
)
