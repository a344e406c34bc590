//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/vending"
	"vending-server/internal/infra/metrics"
	"vending-server/internal/infra/notify"
	"vending-server/internal/infra/world"
	"vending-server/internal/pkg/clock"
	"vending-server/internal/pkg/config"
	"vending-server/internal/pkg/errs"
	"vending-server/internal/usecase/commands"
	"vending-server/internal/usecase/shared"
	"vending-server/tests/common/builder"
)

// memGateway keeps shop rows in memory the way the SQL tables would.
type memGateway struct {
	mu      sync.Mutex
	headers map[vending.ShopID]vending.ShopHeader
	lines   map[vending.ShopID]map[int64]vending.LineRecord
	ops     []string
}

func newMemGateway() *memGateway {
	return &memGateway{
		headers: make(map[vending.ShopID]vending.ShopHeader),
		lines:   make(map[vending.ShopID]map[int64]vending.LineRecord),
	}
}

func (g *memGateway) record(op string) {
	g.ops = append(g.ops, op)
}

func (g *memGateway) InsertShop(_ context.Context, h vending.ShopHeader) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("insert_shop")
	g.headers[h.ShopID] = h
	g.lines[h.ShopID] = make(map[int64]vending.LineRecord)
	return nil
}

func (g *memGateway) InsertLines(_ context.Context, shopID vending.ShopID, lines []vending.LineRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("insert_lines")
	for _, l := range lines {
		g.lines[shopID][l.CartRowID] = l
	}
	return nil
}

func (g *memGateway) UpdateLineQuantity(_ context.Context, shopID vending.ShopID, cartRowID int64, amount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("update_line")
	l, ok := g.lines[shopID][cartRowID]
	if !ok {
		return errs.New("line not found")
	}
	l.Amount = amount
	g.lines[shopID][cartRowID] = l
	return nil
}

func (g *memGateway) DeleteLine(_ context.Context, shopID vending.ShopID, cartRowID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("delete_line")
	delete(g.lines[shopID], cartRowID)
	return nil
}

func (g *memGateway) DeleteShop(_ context.Context, shopID vending.ShopID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("delete_shop")
	delete(g.headers, shopID)
	delete(g.lines, shopID)
	return nil
}

func (g *memGateway) SetAutotrade(_ context.Context, shopID vending.ShopID, d vending.Display) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("set_autotrade")
	h := g.headers[shopID]
	h.Autotrade = true
	h.Display = d
	g.headers[shopID] = h
	return nil
}

func (g *memGateway) LoadUnattendedShops(context.Context) ([]vending.AutotradeRecord, error) {
	return nil, nil
}

func (g *memGateway) MaxShopID(context.Context) (vending.ShopID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var top vending.ShopID
	for id := range g.headers {
		top = max(top, id)
	}
	return top, nil
}

func (g *memGateway) PurgeAllShops(context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("purge")
	clear(g.headers)
	clear(g.lines)
	return nil
}

func (g *memGateway) header(id vending.ShopID) (vending.ShopHeader, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	h, ok := g.headers[id]
	return h, ok
}

func (g *memGateway) line(id vending.ShopID, cartRowID int64) (vending.LineRecord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.lines[id][cartRowID]
	return l, ok
}

func (g *memGateway) opCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.ops)
}

type memChars struct {
	mu    sync.Mutex
	snaps map[int32]character.Snapshot
	saves int
}

func newMemChars() *memChars {
	return &memChars{snaps: make(map[int32]character.Snapshot)}
}

func (s *memChars) Load(_ context.Context, id character.ID) (character.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[id.CharID]
	if !ok {
		return character.Snapshot{}, errs.New("character not found")
	}
	return snap, nil
}

func (s *memChars) Save(_ context.Context, snap character.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[snap.ID.CharID] = snap
	s.saves++
	return nil
}

func (s *memChars) saved(charID int32) (character.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[charID]
	return snap, ok
}

type harness struct {
	vending  commands.VendingCommands
	session  commands.SessionCommands
	world    *world.World
	registry *vending.Registry
	mailbox  *notify.Mailbox
	gateway  *memGateway
	chars    *memChars
	store    shared.CharacterStore
	metrics  *metrics.Metrics
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newHarness(t *testing.T, mutate ...func(*config.Config)) *harness {
	t.Helper()
	cfg := config.NewTestConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	h := &harness{
		world:    world.New(),
		registry: vending.NewRegistry(vending.NewIDAllocator()),
		mailbox:  notify.NewMailbox(notify.DefaultCapacity),
		gateway:  newMemGateway(),
		chars:    newMemChars(),
		metrics:  metrics.New(),
	}
	h.store = h.chars
	h.vending, h.session = h.build(cfg, h.gateway)
	return h
}

func (h *harness) build(cfg config.Config, gateway shared.ShopGateway) (commands.VendingCommands, commands.SessionCommands) {
	deps := commands.Deps{
		Registry: h.registry,
		Sessions: h.world,
		Chars:    h.store,
		Gateway:  gateway,
		Notifier: h.mailbox,
		Metrics:  h.metrics,
		Catalog:  builder.NewCatalog(),
		Clock:    clock.NewMockClock(fixedNow),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return commands.NewVendingCommands(deps, cfg.Vending, cfg.Persistence),
		commands.NewSessionCommands(deps, cfg.Vending, cfg.Persistence)
}

func (h *harness) online(t *testing.T, c *character.Character) *character.Character {
	t.Helper()
	require.NoError(t, h.world.Attach(c))
	return c
}

func (h *harness) open(t *testing.T, seller *character.Character, lines ...vending.RequestedLine) vending.ShopID {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.vending.PrepareVending(ctx, seller.ID().CharID))
	id, err := h.vending.OpenShop(ctx, seller.ID().CharID, "bargains", lines)
	require.NoError(t, err)
	return id
}

func (h *harness) drainKinds(charID int32) []vending.EventKind {
	events := h.mailbox.Drain(charID)
	kinds := make([]vending.EventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

// merchantCart: slot 0 holds ten red potions (row 1), slot 1 three apples (row 2).
func merchantCart() *builder.CharacterBuilder {
	return builder.NewCharacterBuilder().WithCart(
		builder.Stack(1, builder.RedPotion, 10),
		builder.Stack(2, builder.Apple, 3),
	)
}

func standardLines() []vending.RequestedLine {
	return []vending.RequestedLine{
		{CartIndex: 0, Amount: 5, Price: 100},
		{CartIndex: 1, Amount: 3, Price: 50},
	}
}
