package components

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
	"vending-server/internal/pkg/clock"
	"vending-server/internal/pkg/config"
	"vending-server/internal/usecase/autotrade"
	"vending-server/internal/usecase/commands"
	"vending-server/internal/usecase/queries"
	"vending-server/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	autotradeModule,
)

type depsParams struct {
	fx.In

	Registry *vending.Registry
	Sessions shared.Sessions
	Chars    shared.CharacterStore
	Gateway  shared.ShopGateway
	Notifier shared.Notifier
	Metrics  shared.Metrics
	Catalog  item.Catalog
	Clock    clock.Clock
	Logger   *slog.Logger
}

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(p depsParams) commands.Deps {
		return commands.Deps{
			Registry: p.Registry,
			Sessions: p.Sessions,
			Chars:    p.Chars,
			Gateway:  p.Gateway,
			Notifier: p.Notifier,
			Metrics:  p.Metrics,
			Catalog:  p.Catalog,
			Clock:    p.Clock,
			Logger:   p.Logger,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(deps commands.Deps, cfg config.Config) commands.VendingCommands {
			return commands.NewVendingCommands(deps, cfg.Vending, cfg.Persistence)
		},
		func(deps commands.Deps, cfg config.Config) commands.SessionCommands {
			return commands.NewSessionCommands(deps, cfg.Vending, cfg.Persistence)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVendingQueries,
		queries.NewEventQueries,
	),
)

var autotradeModule = fx.Module("usecase/autotrade",
	fx.Provide(
		NewSupervisor,
	),
	fx.Invoke(registerAutotradeLifecycle),
)

func NewSupervisor(
	gateway shared.ShopGateway,
	chars shared.CharacterStore,
	sessions shared.Sessions,
	cmds commands.VendingCommands,
	registry *vending.Registry,
	catalog item.Catalog,
	metrics shared.Metrics,
	cfg config.Config,
	logger *slog.Logger,
) *autotrade.Supervisor {
	return autotrade.NewSupervisor(gateway, chars, sessions, cmds, registry, catalog, metrics, cfg.Autotrade, logger)
}

// registerAutotradeLifecycle restores unattended shops on start. On stop it
// cancels any replay still running, then lets every resident go: live
// players close their shops, autotraders are detached with their rows kept
// for the next boot.
func registerAutotradeLifecycle(lc fx.Lifecycle, sup *autotrade.Supervisor, sessions commands.SessionCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sup.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			if err := sup.Shutdown(ctx); err != nil {
				logger.Warn("autotrade shutdown incomplete", "error", err)
			}
			n := sessions.DisconnectAll(ctx)
			logger.Info("characters released", "count", n)
			return nil
		},
	})
}
