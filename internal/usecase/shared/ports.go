package shared

import (
	"context"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/vending"
	"vending-server/internal/pkg/errs"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

var (
	ErrCharacterOffline = errs.NewKind("character is not online", errs.ErrStateConflict)
	ErrAlreadyOnline    = errs.NewKind("character is already online", errs.ErrStateConflict)
)

// Sessions resolves characters resident in the world, live players and
// autotraders alike.
type Sessions interface {
	ByCharID(charID int32) (*character.Character, bool)
	ByAccountID(accountID int32) (*character.Character, bool)
	Attach(c *character.Character) error
	Detach(charID int32) (*character.Character, bool)
	All() []*character.Character
}

// CharacterStore checkpoints character state.
type CharacterStore interface {
	Load(ctx context.Context, id character.ID) (character.Snapshot, error)
	Save(ctx context.Context, snap character.Snapshot) error
}

// ShopGateway is the durable store of shop headers and lines. Only the
// boot-time load is expected to be consulted synchronously; the other
// calls are checkpoints of state already committed in memory.
type ShopGateway interface {
	InsertShop(ctx context.Context, header vending.ShopHeader) error
	InsertLines(ctx context.Context, shopID vending.ShopID, lines []vending.LineRecord) error
	UpdateLineQuantity(ctx context.Context, shopID vending.ShopID, cartRowID int64, amount int) error
	DeleteLine(ctx context.Context, shopID vending.ShopID, cartRowID int64) error
	DeleteShop(ctx context.Context, shopID vending.ShopID) error
	SetAutotrade(ctx context.Context, shopID vending.ShopID, display vending.Display) error
	LoadUnattendedShops(ctx context.Context) ([]vending.AutotradeRecord, error)
	MaxShopID(ctx context.Context) (vending.ShopID, error)
	PurgeAllShops(ctx context.Context) error
}

// Notifier delivers outward events to one character.
type Notifier interface {
	Notify(charID int32, ev vending.Event)
}

// Metrics records vending activity for operators.
type Metrics interface {
	PurchaseFinished(reason string)
	ShopOpened(kind string)
	ShopClosed(kind string)
	PersistenceFailed(op string)
	AutotradeReplayed(result string)
	SetOpenShops(n int)
}
