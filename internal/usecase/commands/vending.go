package commands

import (
	"context"
	"log/slog"
	"time"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
	"vending-server/internal/pkg/clock"
	"vending-server/internal/pkg/config"
	"vending-server/internal/pkg/errs"
	"vending-server/internal/usecase/shared"
)

//go:generate mockgen -source=vending.go -destination=../../../tests/mock/commands/vending.go -package=commandsmock

const (
	msgItemsRemoved = "Some of your items cannot be vended and were removed from the shop."
	msgBuyerName    = "%s has bought your item(s)."
)

type VendingCommands interface {
	PrepareVending(ctx context.Context, charID int32) error
	OpenShop(ctx context.Context, charID int32, title string, lines []vending.RequestedLine) (vending.ShopID, error)
	OpenShopAs(ctx context.Context, seller *character.Character, title string, lines []vending.RequestedLine) (vending.ShopID, error)
	RestoreDisplay(ctx context.Context, seller *character.Character, d vending.Display) error
	CloseShop(ctx context.Context, charID int32) error
	Autotrade(ctx context.Context, charID int32) error
	Purchase(ctx context.Context, buyerCharID, sellerAccountID int32, shopID vending.ShopID, lines []vending.PurchaseLine) (*PurchaseReceipt, error)
}

type Deps struct {
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

type vendingCommandsImpl struct {
	Deps
	cfg     config.VendingConfig
	persist config.PersistenceConfig
}

func NewVendingCommands(deps Deps, cfg config.VendingConfig, persist config.PersistenceConfig) VendingCommands {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &vendingCommandsImpl{Deps: deps, cfg: cfg, persist: persist}
}

// PrepareVending puts the character in the pre-vend state the open path
// requires. It stands in for the skill use that precedes opening a shop.
func (v *vendingCommandsImpl) PrepareVending(_ context.Context, charID int32) error {
	c, ok := v.Sessions.ByCharID(charID)
	if !ok {
		return shared.ErrCharacterOffline
	}
	if c.IsVending() {
		return vending.ErrAlreadyVending
	}
	if c.IsDead() || c.IsTrading() {
		return vending.ErrCannotOpen
	}
	if c.VendingSkill() < 1 || !c.HasCart() {
		return vending.ErrNoCart
	}
	c.SetPreVending(true)
	return nil
}

func (v *vendingCommandsImpl) OpenShop(ctx context.Context, charID int32, title string, lines []vending.RequestedLine) (vending.ShopID, error) {
	c, ok := v.Sessions.ByCharID(charID)
	if !ok {
		return 0, shared.ErrCharacterOffline
	}
	return v.OpenShopAs(ctx, c, title, lines)
}

// OpenShopAs runs the open path for a resolved seller. Live players and
// replayed autotraders both go through here.
func (v *vendingCommandsImpl) OpenShopAs(ctx context.Context, seller *character.Character, title string, req []vending.RequestedLine) (vending.ShopID, error) {
	seller.LockVending()
	defer seller.UnlockVending()
	if seller.IsVending() {
		return 0, vending.ErrAlreadyVending
	}
	if seller.IsDead() || !seller.IsPreVending() || seller.IsTrading() {
		return 0, vending.ErrCannotOpen
	}
	if seller.VendingSkill() < 1 || !seller.HasCart() {
		return 0, vending.ErrNoCart
	}
	if err := vending.ValidateCount(len(req), seller.VendingSkill(), v.cfg.MaxItems); err != nil {
		return 0, err
	}

	if v.cfg.SaveOnTrade {
		v.checkpoint(ctx, seller)
	}

	lines, dropped := vending.FilterLines(seller, v.Catalog, req, v.cfg.MaxValue)
	if dropped > 0 {
		v.notify(seller.ID().CharID, vending.Event{Kind: vending.EventItemsRemoved, Amount: dropped, Message: msgItemsRemoved})
	}
	if len(lines) == 0 {
		return 0, vending.ErrNoValidItems
	}

	shop := vending.NewShop(v.Registry.NextID(), seller, vending.TruncateTitle(title, v.cfg.TitleMax), lines)
	if err := v.Registry.Register(shop); err != nil {
		return 0, err
	}
	seller.BeginVending(int32(shop.ID()))

	records := make([]vending.LineRecord, 0, len(lines))
	for i, l := range lines {
		s, _ := seller.CartItem(l.CartIndex)
		records = append(records, vending.LineRecord{
			ShopID:    shop.ID(),
			Index:     i,
			CartRowID: s.RowID,
			Amount:    l.Amount,
			Price:     l.Price,
		})
	}
	header := vending.HeaderOf(shop, seller.Sex())
	v.write(ctx, "insert_shop", func(ctx context.Context) error {
		if err := v.Gateway.InsertShop(ctx, header); err != nil {
			return err
		}
		return v.Gateway.InsertLines(ctx, shop.ID(), records)
	})

	v.notify(seller.ID().CharID, vending.Event{Kind: vending.EventShopOpened, ShopID: shop.ID(), Amount: len(lines), Message: shop.Title()})
	v.Metrics.ShopOpened(seller.Kind().String())
	v.Metrics.SetOpenShops(v.Registry.Len())
	v.Logger.InfoContext(ctx, "shop opened",
		"shop_id", shop.ID(),
		"seller", seller.ID().String(),
		"kind", seller.Kind().String(),
		"lines", len(lines),
		"dropped", dropped)
	return shop.ID(), nil
}

// RestoreDisplay applies the stored look of an unattended seller and
// records the shop as unattended.
func (v *vendingCommandsImpl) RestoreDisplay(ctx context.Context, seller *character.Character, d vending.Display) error {
	shop, ok := v.Registry.Lookup(seller.ID().CharID)
	if !ok {
		return vending.ErrNotVending
	}
	seller.SetFacing(d.Facing)
	seller.SetSitting(d.Sitting)
	shop.SetDisplay(d)
	shop.SetAutotrade(true)
	v.write(ctx, "set_autotrade", func(ctx context.Context) error {
		return v.Gateway.SetAutotrade(ctx, shop.ID(), d)
	})
	return nil
}

// CloseShop is a no-op for a seller that is not vending.
func (v *vendingCommandsImpl) CloseShop(ctx context.Context, charID int32) error {
	c, ok := v.Sessions.ByCharID(charID)
	if !ok {
		return nil
	}
	v.closeShop(ctx, c, true)
	return nil
}

// Autotrade detaches a vending player from their connection. The shop
// stays open and is flagged unattended so it is restored on next boot.
func (v *vendingCommandsImpl) Autotrade(ctx context.Context, charID int32) error {
	c, ok := v.Sessions.ByCharID(charID)
	if !ok {
		return shared.ErrCharacterOffline
	}
	if !c.IsVending() {
		return vending.ErrNotVending
	}
	c.MarkAutotrader()
	if err := v.RestoreDisplay(ctx, c, vending.Display{Facing: c.Facing(), Sitting: c.IsSitting()}); err != nil {
		return err
	}
	v.checkpoint(ctx, c)
	v.Logger.InfoContext(ctx, "seller switched to autotrade", "seller", c.ID().String())
	return nil
}

// closeShop unregisters the seller's shop. With purge unset the persisted
// rows are kept, which is how autotraders survive a process stop.
func (v *vendingCommandsImpl) closeShop(ctx context.Context, seller *character.Character, purge bool) bool {
	seller.LockVending()
	defer seller.UnlockVending()
	shop := v.Registry.Remove(seller.ID().CharID)
	if shop == nil {
		// The flag follows the registry.
		seller.EndVending()
		return false
	}
	seller.EndVending()
	for _, c := range v.Sessions.All() {
		c.ForgetViewedShop(int32(shop.ID()))
	}
	if purge {
		shop.LockWrites()
		v.write(ctx, "delete_shop", func(ctx context.Context) error {
			return v.Gateway.DeleteShop(ctx, shop.ID())
		})
		shop.UnlockWrites()
	}

	v.notify(seller.ID().CharID, vending.Event{Kind: vending.EventShopClosed, ShopID: shop.ID()})
	v.Metrics.ShopClosed(seller.Kind().String())
	v.Metrics.SetOpenShops(v.Registry.Len())
	v.Logger.InfoContext(ctx, "shop closed", "shop_id", shop.ID(), "seller", seller.ID().String(), "purged", purge)
	return true
}

// write runs a checkpoint of state already committed in memory. Failures
// are reported and counted; nothing is rolled back.
func (v *vendingCommandsImpl) write(ctx context.Context, op string, fn func(ctx context.Context) error) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), v.writeTimeout())
	defer cancel()
	if err := fn(wctx); err != nil {
		v.Metrics.PersistenceFailed(op)
		v.Logger.ErrorContext(ctx, "persistence write failed",
			"op", op,
			"error", errs.Mark(err, errs.ErrPersistence).Error())
	}
}

func (v *vendingCommandsImpl) checkpoint(ctx context.Context, c *character.Character) {
	c.LockSave()
	defer c.UnlockSave()
	snap := c.Snapshot()
	v.write(ctx, "save_character", func(ctx context.Context) error {
		return v.Chars.Save(ctx, snap)
	})
}

func (v *vendingCommandsImpl) writeTimeout() time.Duration {
	if v.persist.WriteTimeout <= 0 {
		return 3 * time.Second
	}
	return v.persist.WriteTimeout
}

func (v *vendingCommandsImpl) notify(charID int32, ev vending.Event) {
	ev.At = v.Clock.Now()
	v.Notifier.Notify(charID, ev)
}
