//go:build unit

package autotrade_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/vending"
	"vending-server/internal/infra/metrics"
	"vending-server/internal/infra/notify"
	"vending-server/internal/infra/world"
	"vending-server/internal/pkg/clock"
	"vending-server/internal/pkg/config"
	"vending-server/internal/usecase/autotrade"
	"vending-server/internal/usecase/commands"
	"vending-server/tests/common/builder"
	sharedmock "vending-server/tests/mock/shared"
)

type fixture struct {
	sup      *autotrade.Supervisor
	gateway  *sharedmock.MockShopGateway
	chars    *sharedmock.MockCharacterStore
	world    *world.World
	registry *vending.Registry
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := config.NewTestConfig()
	for _, m := range mutate {
		m(&cfg)
	}

	f := &fixture{
		gateway:  sharedmock.NewMockShopGateway(ctrl),
		chars:    sharedmock.NewMockCharacterStore(ctrl),
		world:    world.New(),
		registry: vending.NewRegistry(vending.NewIDAllocator()),
		metrics:  metrics.New(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := builder.NewCatalog()
	opener := commands.NewVendingCommands(commands.Deps{
		Registry: f.registry,
		Sessions: f.world,
		Chars:    f.chars,
		Gateway:  f.gateway,
		Notifier: notify.NewMailbox(notify.DefaultCapacity),
		Metrics:  f.metrics,
		Catalog:  catalog,
		Clock:    clock.NewMockClock(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Logger:   logger,
	}, cfg.Vending, cfg.Persistence)

	f.sup = autotrade.NewSupervisor(f.gateway, f.chars, f.world, opener, f.registry, catalog, f.metrics, cfg.Autotrade, logger)
	return f
}

// allowWrites accepts the checkpoint writes made by a successful replay.
func (f *fixture) allowWrites() {
	f.gateway.EXPECT().InsertShop(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gateway.EXPECT().InsertLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gateway.EXPECT().SetAutotrade(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.chars.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) replayed(result string) float64 {
	return testutil.ToFloat64(f.metrics.AutotradeReplays.WithLabelValues(result))
}

func sellerSnapshot() character.Snapshot {
	return builder.NewCharacterBuilder().
		WithID(2000010, 150010).
		WithCart(
			builder.Stack(11, builder.RedPotion, 10),
			builder.Stack(12, builder.Knife, 1),
		).
		BuildSnapshot()
}

func record(snap character.Snapshot, entries ...vending.AutotradeEntry) vending.AutotradeRecord {
	return vending.AutotradeRecord{
		Header: vending.ShopHeader{
			ShopID:    41,
			Seller:    snap.ID,
			Sex:       snap.Sex,
			Title:     "night shift",
			Autotrade: true,
			Display:   vending.Display{Facing: character.Facing{Body: 6, Head: 1}, Sitting: true},
		},
		Entries: entries,
	}
}

func waitDone(t *testing.T, sup *autotrade.Supervisor) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sup.Wait(ctx))
}

func TestSupervisor_Disabled(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Autotrade.Enabled = false })
	f.gateway.EXPECT().PurgeAllShops(gomock.Any()).Return(nil)

	require.NoError(t, f.sup.Start(context.Background()))

	assert.Equal(t, autotrade.StateDisabled, f.sup.State())
}

func TestSupervisor_LoadFailure(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().LoadUnattendedShops(gomock.Any()).Return(nil, errors.New("relation does not exist"))
	f.gateway.EXPECT().MaxShopID(gomock.Any()).Return(vending.ShopID(57), nil)

	require.NoError(t, f.sup.Start(context.Background()), "a load failure only disables the feature")

	assert.Equal(t, autotrade.StateDisabled, f.sup.State())
	assert.Equal(t, 0, f.sup.Pending())
	assert.Equal(t, vending.ShopID(58), f.registry.NextID(), "new shops stay clear of the stale rows")
}

func TestSupervisor_LoadFailure_IDsUnknown(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().LoadUnattendedShops(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.gateway.EXPECT().MaxShopID(gomock.Any()).Return(vending.ShopID(0), errors.New("connection refused"))

	require.NoError(t, f.sup.Start(context.Background()))

	assert.Equal(t, autotrade.StateDisabled, f.sup.State())
	assert.Equal(t, vending.ShopID(1), f.registry.NextID())
}

func TestSupervisor_NothingToReplay(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.gateway.EXPECT().LoadUnattendedShops(gomock.Any()).Return(nil, nil),
		f.gateway.EXPECT().PurgeAllShops(gomock.Any()).Return(nil),
	)

	require.NoError(t, f.sup.Start(context.Background()))

	assert.Equal(t, autotrade.StateDrained, f.sup.State())
	assert.ErrorIs(t, f.sup.Start(context.Background()), autotrade.ErrBadState)
}

func TestSupervisor_Replay(t *testing.T) {
	f := newFixture(t)
	f.allowWrites()
	snap := sellerSnapshot()
	missing := character.ID{AccountID: 2000011, CharID: 150011}

	gomock.InOrder(
		f.gateway.EXPECT().LoadUnattendedShops(gomock.Any()).Return([]vending.AutotradeRecord{
			record(snap,
				vending.AutotradeEntry{CartRowID: 11, Amount: 4, Price: 100},
				vending.AutotradeEntry{CartRowID: 12, Amount: 3, Price: 5000},
				vending.AutotradeEntry{CartRowID: 99, Amount: 1, Price: 1},
			),
			{Header: vending.ShopHeader{ShopID: 42, Seller: missing, Title: "gone"}},
		}, nil),
		f.gateway.EXPECT().PurgeAllShops(gomock.Any()).Return(nil),
	)
	f.chars.EXPECT().Load(gomock.Any(), snap.ID).Return(snap, nil)
	f.chars.EXPECT().Load(gomock.Any(), missing).Return(character.Snapshot{}, errors.New("no rows"))

	require.NoError(t, f.sup.Start(context.Background()))
	waitDone(t, f.sup)

	assert.Equal(t, autotrade.StateDrained, f.sup.State())
	assert.Equal(t, 0, f.sup.Pending())
	assert.Equal(t, 1.0, f.replayed("opened"))
	assert.Equal(t, 1.0, f.replayed("load_failed"))

	seller, ok := f.world.ByCharID(snap.ID.CharID)
	require.True(t, ok)
	assert.True(t, seller.IsAutotrader())
	assert.True(t, seller.IsVending())
	assert.True(t, seller.IsSitting())
	assert.Equal(t, character.Facing{Body: 6, Head: 1}, seller.Facing())

	shop, ok := f.registry.Lookup(snap.ID.CharID)
	require.True(t, ok)
	assert.NotEqual(t, vending.ShopID(41), shop.ID(), "replayed shops get a fresh id")
	assert.True(t, shop.IsAutotrade())
	assert.Equal(t, "night shift", shop.Title())
	assert.Equal(t, []vending.Line{
		{CartIndex: 0, Amount: 4, Price: 100},
		{CartIndex: 1, Amount: 1, Price: 5000},
	}, shop.Lines(), "missing rows are dropped and non-stackable items sell one at a time")
}

func TestSupervisor_ReplayOverrides(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Autotrade.Direction = 2
		c.Autotrade.Sit = 0
	})
	f.allowWrites()
	snap := sellerSnapshot()

	f.gateway.EXPECT().LoadUnattendedShops(gomock.Any()).Return([]vending.AutotradeRecord{
		record(snap, vending.AutotradeEntry{CartRowID: 11, Amount: 1, Price: 100}),
	}, nil)
	f.gateway.EXPECT().PurgeAllShops(gomock.Any()).Return(nil)
	f.chars.EXPECT().Load(gomock.Any(), snap.ID).Return(snap, nil)

	require.NoError(t, f.sup.Start(context.Background()))
	waitDone(t, f.sup)

	seller, ok := f.world.ByCharID(snap.ID.CharID)
	require.True(t, ok)
	assert.Equal(t, character.Facing{Body: 2, Head: 1}, seller.Facing())
	assert.False(t, seller.IsSitting())
}

func TestSupervisor_ReplayOpenFailure(t *testing.T) {
	f := newFixture(t)
	f.allowWrites()
	snap := sellerSnapshot()

	f.gateway.EXPECT().LoadUnattendedShops(gomock.Any()).Return([]vending.AutotradeRecord{
		record(snap, vending.AutotradeEntry{CartRowID: 77, Amount: 1, Price: 100}),
	}, nil)
	f.gateway.EXPECT().PurgeAllShops(gomock.Any()).Return(nil)
	f.chars.EXPECT().Load(gomock.Any(), snap.ID).Return(snap, nil)

	require.NoError(t, f.sup.Start(context.Background()))
	waitDone(t, f.sup)

	assert.Equal(t, autotrade.StateDrained, f.sup.State())
	assert.Equal(t, 0, f.world.Len(), "the synthesized seller is discarded")
	assert.Equal(t, 0, f.registry.Len())
	assert.Equal(t, 1.0, f.replayed("open_failed"))
}

func TestSupervisor_ShutdownReleasesPending(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Autotrade.ReplayConcurrency = 1 })
	snap := sellerSnapshot()
	entered := make(chan struct{})

	f.gateway.EXPECT().LoadUnattendedShops(gomock.Any()).Return([]vending.AutotradeRecord{
		record(snap), record(snap), record(snap),
	}, nil)
	f.gateway.EXPECT().PurgeAllShops(gomock.Any()).Return(nil)
	f.chars.EXPECT().Load(gomock.Any(), snap.ID).DoAndReturn(func(ctx context.Context, _ character.ID) (character.Snapshot, error) {
		close(entered)
		<-ctx.Done()
		return character.Snapshot{}, ctx.Err()
	}).Times(1)

	require.NoError(t, f.sup.Start(context.Background()))
	<-entered
	assert.Equal(t, autotrade.StateReplaying, f.sup.State())
	assert.Equal(t, 3, f.sup.Pending())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.sup.Shutdown(ctx))

	assert.Equal(t, autotrade.StateStopped, f.sup.State())
	assert.Equal(t, 0, f.sup.Pending())
	assert.Equal(t, 0, f.world.Len())
}

func TestSupervisor_ShutdownWhenIdle(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.sup.Shutdown(context.Background()))

	assert.Equal(t, autotrade.StateStopped, f.sup.State())
	assert.ErrorIs(t, f.sup.Start(context.Background()), autotrade.ErrBadState)
}
