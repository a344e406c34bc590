package resilience

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sony/gobreaker"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/vending"
	"vending-server/internal/infra"
	"vending-server/internal/pkg/config"
	"vending-server/internal/usecase/shared"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

// StateObserver is told about breaker transitions.
type StateObserver interface {
	BreakerState(name string, state gobreaker.State)
}

func newBreaker(name string, cfg config.PersistenceConfig, logger *slog.Logger, obs StateObserver) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// A missing row is an answer, not an outage.
			return err == nil || infra.IsKind(err, infra.KindNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			if obs != nil {
				obs.BreakerState(name, to)
			}
		},
	})
}

func run(cb *gobreaker.CircuitBreaker, fn func() error) error {
	_, err := cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return infra.WrapRepoErr("store unavailable: "+cb.Name(), ErrCircuitOpen, infra.KindUnavailable)
	}
	return err
}

// Gateway guards a shop gateway with a circuit breaker so that a dead
// store fails fast instead of stalling every purchase on its timeout.
type Gateway struct {
	inner shared.ShopGateway
	cb    *gobreaker.CircuitBreaker
}

var _ shared.ShopGateway = (*Gateway)(nil)

func NewGateway(inner shared.ShopGateway, cfg config.PersistenceConfig, logger *slog.Logger, obs StateObserver) *Gateway {
	return &Gateway{inner: inner, cb: newBreaker("shop_gateway", cfg, logger, obs)}
}

func (g *Gateway) State() gobreaker.State {
	return g.cb.State()
}

func (g *Gateway) InsertShop(ctx context.Context, h vending.ShopHeader) error {
	return run(g.cb, func() error { return g.inner.InsertShop(ctx, h) })
}

func (g *Gateway) InsertLines(ctx context.Context, shopID vending.ShopID, lines []vending.LineRecord) error {
	return run(g.cb, func() error { return g.inner.InsertLines(ctx, shopID, lines) })
}

func (g *Gateway) UpdateLineQuantity(ctx context.Context, shopID vending.ShopID, cartRowID int64, amount int) error {
	return run(g.cb, func() error { return g.inner.UpdateLineQuantity(ctx, shopID, cartRowID, amount) })
}

func (g *Gateway) DeleteLine(ctx context.Context, shopID vending.ShopID, cartRowID int64) error {
	return run(g.cb, func() error { return g.inner.DeleteLine(ctx, shopID, cartRowID) })
}

func (g *Gateway) DeleteShop(ctx context.Context, shopID vending.ShopID) error {
	return run(g.cb, func() error { return g.inner.DeleteShop(ctx, shopID) })
}

func (g *Gateway) SetAutotrade(ctx context.Context, shopID vending.ShopID, d vending.Display) error {
	return run(g.cb, func() error { return g.inner.SetAutotrade(ctx, shopID, d) })
}

func (g *Gateway) LoadUnattendedShops(ctx context.Context) ([]vending.AutotradeRecord, error) {
	var out []vending.AutotradeRecord
	err := run(g.cb, func() error {
		records, err := g.inner.LoadUnattendedShops(ctx)
		out = records
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gateway) MaxShopID(ctx context.Context) (vending.ShopID, error) {
	var out vending.ShopID
	err := run(g.cb, func() error {
		id, err := g.inner.MaxShopID(ctx)
		out = id
		return err
	})
	if err != nil {
		return 0, err
	}
	return out, nil
}

func (g *Gateway) PurgeAllShops(ctx context.Context) error {
	return run(g.cb, func() error { return g.inner.PurgeAllShops(ctx) })
}

// CharacterStore is the breaker-guarded character checkpoint store.
type CharacterStore struct {
	inner shared.CharacterStore
	cb    *gobreaker.CircuitBreaker
}

var _ shared.CharacterStore = (*CharacterStore)(nil)

func NewCharacterStore(inner shared.CharacterStore, cfg config.PersistenceConfig, logger *slog.Logger, obs StateObserver) *CharacterStore {
	return &CharacterStore{inner: inner, cb: newBreaker("character_store", cfg, logger, obs)}
}

func (s *CharacterStore) Load(ctx context.Context, id character.ID) (character.Snapshot, error) {
	var snap character.Snapshot
	err := run(s.cb, func() error {
		var err error
		snap, err = s.inner.Load(ctx, id)
		return err
	})
	return snap, err
}

func (s *CharacterStore) Save(ctx context.Context, snap character.Snapshot) error {
	return run(s.cb, func() error { return s.inner.Save(ctx, snap) })
}
