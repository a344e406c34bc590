package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
	"vending-server/internal/pkg/errs"
	"vending-server/internal/usecase/shared"
)

type ReceiptItem struct {
	CartIndex int         `json:"cart_index"`
	NameID    item.NameID `json:"name_id"`
	Amount    int         `json:"amount"`
	Price     int64       `json:"price"`
}

type PurchaseReceipt struct {
	TransactionID uuid.UUID      `json:"transaction_id"`
	ShopID        vending.ShopID `json:"shop_id"`
	Total         int64          `json:"total"`
	SellerNet     int64          `json:"seller_net"`
	Items         []ReceiptItem  `json:"items"`
	ShopClosed    bool           `json:"shop_closed"`
}

// lineWrite is a persisted line change collected under the shop lock and
// applied after it is released.
type lineWrite struct {
	cartRowID int64
	remaining int
}

func (v *vendingCommandsImpl) Purchase(
	ctx context.Context,
	buyerCharID, sellerAccountID int32,
	shopID vending.ShopID,
	req []vending.PurchaseLine,
) (*PurchaseReceipt, error) {
	buyer, ok := v.Sessions.ByCharID(buyerCharID)
	if !ok {
		return nil, shared.ErrCharacterOffline
	}
	receipt, err := v.purchase(ctx, buyer, sellerAccountID, shopID, req)
	if err != nil {
		label := "error"
		if reason, ok := vending.ReasonOf(err); ok {
			label = reason.String()
		}
		v.Metrics.PurchaseFinished(label)
		ev := vending.Event{Kind: vending.EventPurchaseFailed, ShopID: shopID, Reason: label, CartIndex: -1}
		var perr *vending.PurchaseError
		if errs.As(err, &perr) {
			ev.CartIndex = perr.CartIndex
			ev.Amount = perr.Amount
		}
		v.notify(buyerCharID, ev)
		v.Logger.DebugContext(ctx, "purchase rejected",
			"buyer", buyer.ID().String(),
			"seller_account_id", sellerAccountID,
			"shop_id", shopID,
			"reason", label)
		return nil, err
	}
	v.Metrics.PurchaseFinished(vending.ReasonOK.String())
	return receipt, nil
}

func (v *vendingCommandsImpl) purchase(
	ctx context.Context,
	buyer *character.Character,
	sellerAccountID int32,
	shopID vending.ShopID,
	req []vending.PurchaseLine,
) (*PurchaseReceipt, error) {
	seller, ok := v.Sessions.ByAccountID(sellerAccountID)
	if !ok || !seller.IsVending() || seller.ID() == buyer.ID() {
		return nil, vending.Reject(vending.ReasonShopNotFound)
	}
	shop, ok := v.Registry.Lookup(seller.ID().CharID)
	if !ok {
		return nil, vending.Reject(vending.ReasonShopNotFound)
	}
	if shop.ID() != shopID {
		return nil, vending.Reject(vending.ReasonShopChanged)
	}
	remote := buyer.ConsumeRemote(seller.ID().AccountID)
	if !remote && !buyer.Position().Within(seller.Position(), v.cfg.AreaSize) {
		return nil, vending.Reject(vending.ReasonOutOfRange)
	}

	shop.Lock()
	if shop.ClosedLocked() {
		shop.Unlock()
		return nil, vending.Reject(vending.ReasonShopNotFound)
	}
	unlockPair := lockPair(buyer, seller)

	plan, err := vending.PlanPurchase(vending.PurchaseInput{
		Lines:      shop.LinesLocked(),
		SoldOut:    shop.SoldOutLocked(),
		Cart:       seller,
		Catalog:    v.Catalog,
		Buyer:      buyer,
		SellerZeny: seller.Zeny(),
		Requests:   req,
	}, vending.PurchasePolicy{
		MaxZeny:  v.cfg.MaxZeny,
		MaxItems: v.cfg.MaxItems,
		OverMax:  v.cfg.OverMax,
	})
	if err != nil {
		unlockPair()
		shop.Unlock()
		return nil, err
	}

	txID := uuid.New()
	receipt, writes, remaining := v.commit(ctx, txID, shop, buyer, seller, plan)
	unlockPair()
	shop.LockWrites()
	shop.Unlock()

	for _, w := range writes {
		if w.remaining > 0 {
			v.write(ctx, "update_line", func(ctx context.Context) error {
				return v.Gateway.UpdateLineQuantity(ctx, shop.ID(), w.cartRowID, w.remaining)
			})
			continue
		}
		v.write(ctx, "delete_line", func(ctx context.Context) error {
			return v.Gateway.DeleteLine(ctx, shop.ID(), w.cartRowID)
		})
	}
	shop.UnlockWrites()

	sellerID := seller.ID().CharID
	for _, it := range receipt.Items {
		v.notify(sellerID, vending.Event{Kind: vending.EventStockReport, ShopID: shop.ID(), CartIndex: it.CartIndex, Amount: it.Amount})
		if v.cfg.BuyerName {
			v.notify(sellerID, vending.Event{Kind: vending.EventBuyerName, ShopID: shop.ID(), Message: fmt.Sprintf(msgBuyerName, buyer.Name())})
		}
	}
	v.notify(buyer.ID().CharID, vending.Event{Kind: vending.EventPurchaseOK, ShopID: shop.ID(), Amount: len(receipt.Items)})

	if v.cfg.SaveOnTrade {
		v.checkpoint(ctx, buyer)
		v.checkpoint(ctx, seller)
	}

	if !remaining && seller.IsAutotrader() {
		v.quit(ctx, seller, true)
		receipt.ShopClosed = true
		v.Logger.InfoContext(ctx, "autotrader sold out", "seller", seller.ID().String())
	}

	v.Logger.InfoContext(ctx, "purchase completed",
		"tx_id", txID.String(),
		"buyer", buyer.ID().String(),
		"seller", seller.ID().String(),
		"shop_id", shop.ID(),
		"total", receipt.Total,
		"seller_net", receipt.SellerNet)
	return receipt, nil
}

// commit applies a validated plan. The caller holds the shop lock and both
// character locks. Currency moves only for the lines that transferred.
func (v *vendingCommandsImpl) commit(
	ctx context.Context,
	txID uuid.UUID,
	shop *vending.Shop,
	buyer, seller *character.Character,
	plan vending.Plan,
) (*PurchaseReceipt, []lineWrite, bool) {
	writes := make([]lineWrite, 0, len(plan.Items))
	moved := make([]vending.PlannedItem, 0, len(plan.Items))
	for _, it := range plan.Items {
		taken, err := seller.TakeFromCart(it.CartIndex, it.Amount)
		if err != nil {
			v.Logger.ErrorContext(ctx, "cart removal after validation failed",
				"tx_id", txID.String(), "cart_index", it.CartIndex, "error", err.Error())
			continue
		}
		if err := buyer.AddToInventory(taken, it.Def.Weight, it.Def.Stackable); err != nil {
			v.Logger.ErrorContext(ctx, "inventory add after validation failed, returning item to cart",
				"tx_id", txID.String(), "cart_index", it.CartIndex, "error", err.Error())
			if err := seller.PutInCart(taken, it.Def.Stackable); err != nil {
				v.Logger.ErrorContext(ctx, "item lost", "tx_id", txID.String(), "name_id", taken.NameID, "amount", taken.Amount)
			}
			continue
		}
		left := shop.DecrementLocked(it.LineIndex, it.Amount)
		writes = append(writes, lineWrite{cartRowID: it.Item.RowID, remaining: left})
		moved = append(moved, it)
	}

	total := vending.TotalOf(moved)
	if total != plan.Total {
		v.Logger.ErrorContext(ctx, "purchase partially applied",
			"tx_id", txID.String(), "planned", plan.Total, "charged", total)
	}
	net := vending.NetOfTax(total, v.cfg.TaxRate)
	if err := buyer.SubZeny(total); err != nil {
		v.Logger.ErrorContext(ctx, "debit after validation failed", "tx_id", txID.String(), "error", err.Error())
	}
	if err := seller.AddZeny(net, v.cfg.MaxZeny, v.cfg.OverMax); err != nil {
		v.Logger.ErrorContext(ctx, "credit after validation failed", "tx_id", txID.String(), "error", err.Error())
	}

	receipt := &PurchaseReceipt{
		TransactionID: txID,
		ShopID:        shop.ID(),
		Total:         total,
		SellerNet:     net,
		Items:         make([]ReceiptItem, 0, len(moved)),
	}
	for _, it := range moved {
		receipt.Items = append(receipt.Items, ReceiptItem{
			CartIndex: it.CartIndex,
			NameID:    it.Item.NameID,
			Amount:    it.Amount,
			Price:     it.Price,
		})
	}
	remaining := shop.CompactLocked()
	return receipt, writes, remaining
}

// lockPair takes the trade locks of two characters in a fixed order so
// that crossing purchases cannot deadlock.
func lockPair(a, b *character.Character) func() {
	first, second := a, b
	if b.ID().CharID < a.ID().CharID {
		first, second = b, a
	}
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
