package components

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"vending-server/internal/infra/query"
	"vending-server/internal/infra/repository"
	"vending-server/internal/infra/resilience"
	"vending-server/internal/pkg/config"
	"vending-server/internal/usecase/shared"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.VendingQueries)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CharacterQueries)),
		),
		repository.NewVendingRepository,
		repository.NewCharacterRepository,
		fx.Annotate(
			NewShopGateway,
			fx.As(new(shared.ShopGateway)),
		),
		fx.Annotate(
			NewCharacterStore,
			fx.As(new(shared.CharacterStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) (query.DBTX, repository.TxDB) {
	return pool, pool
}

// NewShopGateway puts the circuit breaker in front of the shop tables.
func NewShopGateway(repo *repository.VendingRepository, cfg config.Config, logger *slog.Logger, obs resilience.StateObserver) *resilience.Gateway {
	return resilience.NewGateway(repo, cfg.Persistence, logger, obs)
}

func NewCharacterStore(repo *repository.CharacterRepository, cfg config.Config, logger *slog.Logger, obs resilience.StateObserver) *resilience.CharacterStore {
	return resilience.NewCharacterStore(repo, cfg.Persistence, logger, obs)
}
