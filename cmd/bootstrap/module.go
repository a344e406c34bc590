package bootstrap

import (
	"go.uber.org/fx"

	"vending-server/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	WorldModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
