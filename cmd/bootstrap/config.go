package bootstrap

import (
	"go.uber.org/fx"

	"vending-server/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
