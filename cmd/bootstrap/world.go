package bootstrap

import (
	"go.uber.org/fx"

	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
	"vending-server/internal/infra/itemdb"
	"vending-server/internal/infra/metrics"
	"vending-server/internal/infra/notify"
	"vending-server/internal/infra/resilience"
	"vending-server/internal/infra/world"
	"vending-server/internal/pkg/config"
	"vending-server/internal/usecase/queries"
	"vending-server/internal/usecase/shared"
)

// WorldModule provides the in-memory state shared by every request: the
// resident characters, the shop registry, notification mailboxes and the
// item database.
var WorldModule = fx.Module("world",
	fx.Provide(
		fx.Annotate(
			world.New,
			fx.As(new(shared.Sessions)),
		),
		func() *vending.Registry {
			return vending.NewRegistry(&vending.IDAllocator{})
		},
		func() *notify.Mailbox {
			return notify.NewMailbox(notify.DefaultCapacity)
		},
		func(m *notify.Mailbox) shared.Notifier { return m },
		func(m *notify.Mailbox) queries.Mailbox { return m },
		fx.Annotate(
			NewItemDB,
			fx.As(new(item.Catalog)),
		),
	),
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) shared.Metrics { return m },
		func(m *metrics.Metrics) resilience.StateObserver { return m },
	),
)

func NewItemDB(cfg config.Config) (*itemdb.DB, error) {
	return itemdb.Load(cfg.Vending.ItemDBPath)
}
