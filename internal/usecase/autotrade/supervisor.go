package autotrade

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
	"vending-server/internal/pkg/config"
	"vending-server/internal/pkg/errs"
	"vending-server/internal/usecase/shared"
)

type State int32

const (
	StateIdle State = iota
	StateLoading
	StateReplaying
	StateDrained
	StateDisabled
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReplaying:
		return "replaying"
	case StateDrained:
		return "drained"
	case StateDisabled:
		return "disabled"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

var ErrBadState = errs.New("autotrade supervisor is not idle")

// Opener is the shop-open path the supervisor replays records through.
type Opener interface {
	OpenShopAs(ctx context.Context, seller *character.Character, title string, lines []vending.RequestedLine) (vending.ShopID, error)
	RestoreDisplay(ctx context.Context, seller *character.Character, d vending.Display) error
}

// IDReserver keeps newly allocated shop ids clear of persisted rows.
type IDReserver interface {
	ReserveIDs(floor vending.ShopID)
}

// Supervisor restores unattended shops at boot.
type Supervisor struct {
	gateway  shared.ShopGateway
	chars    shared.CharacterStore
	sessions shared.Sessions
	opener   Opener
	ids      IDReserver
	catalog  item.Catalog
	metrics  shared.Metrics
	cfg      config.AutotradeConfig
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	records []vending.AutotradeRecord
	done    int
	opened  int
	cancel  context.CancelFunc
	wait    chan struct{}
}

func NewSupervisor(
	gateway shared.ShopGateway,
	chars shared.CharacterStore,
	sessions shared.Sessions,
	opener Opener,
	ids IDReserver,
	catalog item.Catalog,
	metrics shared.Metrics,
	cfg config.AutotradeConfig,
	logger *slog.Logger,
) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Supervisor{
		gateway:  gateway,
		chars:    chars,
		sessions: sessions,
		opener:   opener,
		ids:      ids,
		catalog:  catalog,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending is the number of loaded records not yet replayed or discarded.
func (s *Supervisor) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records == nil {
		return 0
	}
	return len(s.records) - s.done
}

// Start loads the persisted unattended shops and replays them in the
// background. A load failure disables the feature for this run and is
// not returned: the process keeps serving.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrBadState
	}
	if !s.cfg.Enabled {
		s.state = StateDisabled
		s.mu.Unlock()
		s.purge(ctx)
		return nil
	}
	s.state = StateLoading
	s.mu.Unlock()

	records, err := s.gateway.LoadUnattendedShops(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateDisabled
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "autotrade load failed, feature disabled for this run",
			"error", errs.Mark(err, errs.ErrPersistence).Error())
		s.reserveStaleIDs(ctx)
		return nil
	}
	s.applyOverrides(records)

	entries := 0
	for _, r := range records {
		entries += len(r.Entries)
	}
	s.logger.InfoContext(ctx, "loaded vending autotraders", "autotraders", len(records), "items", entries)

	// Loaded rows are obsolete from here on; every replayed shop writes
	// its own rows under a fresh shop id.
	s.purge(ctx)

	s.mu.Lock()
	if s.state != StateLoading {
		s.mu.Unlock()
		return nil
	}
	if len(records) == 0 {
		s.state = StateDrained
		s.mu.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.state = StateReplaying
	s.records = records
	s.cancel = cancel
	s.wait = make(chan struct{})
	s.mu.Unlock()

	go s.replayAll(runCtx, records)
	return nil
}

// Wait blocks until the background replay has finished or ctx ends.
func (s *Supervisor) Wait(ctx context.Context) error {
	s.mu.Lock()
	wait := s.wait
	s.mu.Unlock()
	if wait == nil {
		return nil
	}
	select {
	case <-wait:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown releases records not yet replayed. Shops already replayed are
// left alone; they leave through the normal disconnect path.
func (s *Supervisor) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	cancel, wait := s.cancel, s.wait
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if wait != nil {
		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDrained && s.state != StateDisabled {
		s.logger.InfoContext(ctx, "autotrade supervisor stopped", "released", len(s.records)-s.done)
	}
	s.state = StateStopped
	s.records = nil
	return nil
}

func (s *Supervisor) replayAll(ctx context.Context, records []vending.AutotradeRecord) {
	defer close(s.wait)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.cfg.ReplayConcurrency))
	for i := range records {
		if gctx.Err() != nil {
			break
		}
		rec := records[i]
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			s.complete(ctx, s.replay(gctx, rec))
			return nil
		})
	}
	_ = g.Wait()
}

// complete counts one finished replay and drains the supervisor once every
// loaded record is accounted for.
func (s *Supervisor) complete(ctx context.Context, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done++
	if ok {
		s.opened++
	}
	if s.state == StateReplaying && s.done >= len(s.records) {
		s.state = StateDrained
		s.logger.InfoContext(ctx, "autotrade replay finished", "opened", s.opened, "failed", s.done-s.opened)
		s.records = nil
	}
}

// replay rebuilds one unattended seller and reopens its shop through the
// regular open path. On any failure the synthesized seller is discarded.
func (s *Supervisor) replay(ctx context.Context, rec vending.AutotradeRecord) bool {
	log := s.logger.With("seller", rec.Header.Seller.String(), "shop_id", rec.Header.ShopID)

	snap, err := s.chars.Load(ctx, rec.Header.Seller)
	if err != nil {
		log.ErrorContext(ctx, "autotrader character load failed", "error", err.Error())
		s.metrics.AutotradeReplayed("load_failed")
		return false
	}
	seller := character.FromSnapshot(snap, character.KindAutotrader)
	if err := s.sessions.Attach(seller); err != nil {
		log.WarnContext(ctx, "autotrader already resident", "error", err.Error())
		s.metrics.AutotradeReplayed("resident")
		return false
	}

	lines := s.resolve(seller, rec.Entries)
	seller.SetPreVending(true)
	if _, err := s.opener.OpenShopAs(ctx, seller, rec.Header.Title, lines); err != nil {
		s.sessions.Detach(seller.ID().CharID)
		log.ErrorContext(ctx, "failed to restore autotrade vending",
			"items", len(lines),
			"error", err.Error())
		s.metrics.AutotradeReplayed("open_failed")
		return false
	}
	if err := s.opener.RestoreDisplay(ctx, seller, rec.Header.Display); err != nil {
		log.WarnContext(ctx, "autotrader display not restored", "error", err.Error())
	}
	if err := s.chars.Save(ctx, seller.Snapshot()); err != nil {
		log.ErrorContext(ctx, "autotrader checkpoint failed", "error", errs.Mark(err, errs.ErrPersistence).Error())
		s.metrics.PersistenceFailed("save_character")
	}

	pos := seller.Position()
	log.InfoContext(ctx, "loaded vending for autotrader",
		"name", seller.Name(),
		"items", len(lines),
		"map", pos.Map,
		"x", pos.X,
		"y", pos.Y)
	s.metrics.AutotradeReplayed("opened")
	return true
}

// resolve maps stored cart rows to current cart slots. Rows that are gone
// are dropped; non-stackable items are always offered one at a time.
func (s *Supervisor) resolve(seller *character.Character, entries []vending.AutotradeEntry) []vending.RequestedLine {
	lines := make([]vending.RequestedLine, 0, len(entries))
	for _, e := range entries {
		idx, ok := seller.FindCartRow(e.CartRowID)
		if !ok {
			continue
		}
		amount := e.Amount
		st, _ := seller.CartItem(idx)
		if def, ok := s.catalog.Lookup(st.NameID); ok && !def.Stackable {
			amount = 1
		}
		lines = append(lines, vending.RequestedLine{CartIndex: idx, Amount: amount, Price: e.Price})
	}
	return lines
}

func (s *Supervisor) applyOverrides(records []vending.AutotradeRecord) {
	for i := range records {
		d := &records[i].Header.Display
		if s.cfg.Direction >= 0 {
			d.Facing.Body = uint8(s.cfg.Direction)
		}
		if s.cfg.HeadDirection >= 0 {
			d.Facing.Head = uint8(s.cfg.HeadDirection)
		}
		if s.cfg.Sit >= 0 {
			d.Sitting = s.cfg.Sit > 0
		}
	}
}

func (s *Supervisor) purge(ctx context.Context) {
	if err := s.gateway.PurgeAllShops(ctx); err != nil {
		s.metrics.PersistenceFailed("purge_shops")
		s.logger.ErrorContext(ctx, "failed to purge persisted shops", "error", errs.Mark(err, errs.ErrPersistence).Error())
	}
}

// reserveStaleIDs runs when the persisted rows were neither replayed nor
// purged: new shops must not reuse their ids.
func (s *Supervisor) reserveStaleIDs(ctx context.Context) {
	maxID, err := s.gateway.MaxShopID(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "could not read persisted shop ids, new shops may collide with stale rows",
			"error", errs.Mark(err, errs.ErrPersistence).Error())
		return
	}
	s.ids.ReserveIDs(maxID)
	s.logger.InfoContext(ctx, "shop ids reserved above stale rows", "max_shop_id", maxID)
}
