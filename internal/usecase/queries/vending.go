package queries

import (
	"context"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
	"vending-server/internal/usecase/shared"
)

//go:generate mockgen -source=vending.go -destination=../../../tests/mock/queries/vending.go -package=queriesmock

type ShopItemView struct {
	CartIndex int                  `json:"cart_index"`
	NameID    item.NameID          `json:"name_id"`
	Name      string               `json:"name"`
	Amount    int                  `json:"amount"`
	Price     int64                `json:"price"`
	Refine    int                  `json:"refine"`
	Cards     [item.MaxSlots]int32 `json:"cards"`
}

type ShopView struct {
	ShopID          vending.ShopID     `json:"shop_id"`
	SellerAccountID int32              `json:"seller_account_id"`
	SellerCharID    int32              `json:"seller_char_id"`
	SellerName      string             `json:"seller_name"`
	Title           string             `json:"title"`
	Position        character.Position `json:"position"`
	Autotrade       bool               `json:"autotrade"`
	Items           []ShopItemView     `json:"items"`
}

type VendingQueries interface {
	Lookup(ctx context.Context, sellerCharID int32) (*ShopView, error)
	ListItems(ctx context.Context, buyerCharID, sellerAccountID int32) (*ShopView, error)
	IsSelling(ctx context.Context, sellerCharID int32, nameID item.NameID) bool
	SearchAll(ctx context.Context, q vending.SearchQuery, visit func(vending.SearchResult) bool) bool
	Search(ctx context.Context, q vending.SearchQuery, limit int) ([]vending.SearchResult, bool)
	SelectResult(ctx context.Context, buyerCharID, sellerAccountID int32, shopID vending.ShopID) error
	ListShops(ctx context.Context) []*ShopView
}

type vendingQueriesImpl struct {
	registry *vending.Registry
	sessions shared.Sessions
	catalog  item.Catalog
}

func NewVendingQueries(registry *vending.Registry, sessions shared.Sessions, catalog item.Catalog) VendingQueries {
	return &vendingQueriesImpl{registry: registry, sessions: sessions, catalog: catalog}
}

func (q *vendingQueriesImpl) Lookup(_ context.Context, sellerCharID int32) (*ShopView, error) {
	shop, ok := q.registry.Lookup(sellerCharID)
	if !ok {
		return nil, vending.ErrNotVending
	}
	seller, ok := q.sessions.ByCharID(sellerCharID)
	if !ok {
		return nil, vending.ErrNotVending
	}
	return q.view(shop, seller), nil
}

// ListItems shows a shop to a buyer and remembers it as the shop the buyer
// is looking at. Both sides must be allowed to hand items over.
func (q *vendingQueriesImpl) ListItems(_ context.Context, buyerCharID, sellerAccountID int32) (*ShopView, error) {
	buyer, ok := q.sessions.ByCharID(buyerCharID)
	if !ok {
		return nil, shared.ErrCharacterOffline
	}
	seller, ok := q.sessions.ByAccountID(sellerAccountID)
	if !ok || !seller.IsVending() {
		return nil, vending.ErrShopNotFound
	}
	shop, ok := q.registry.Lookup(seller.ID().CharID)
	if !ok {
		return nil, vending.ErrShopNotFound
	}
	if !buyer.CanGiveItems() || !seller.CanGiveItems() {
		return nil, vending.ErrTradeForbidden
	}
	buyer.SetViewedShop(int32(shop.ID()))
	return q.view(shop, seller), nil
}

func (q *vendingQueriesImpl) IsSelling(_ context.Context, sellerCharID int32, nameID item.NameID) bool {
	shop, ok := q.registry.Lookup(sellerCharID)
	if !ok {
		return false
	}
	seller, ok := q.sessions.ByCharID(sellerCharID)
	if !ok {
		return false
	}
	for _, l := range shop.Lines() {
		if s, ok := seller.CartItem(l.CartIndex); ok && s.NameID == nameID {
			return true
		}
	}
	return false
}

// SearchAll visits matching lines of every open shop and reports whether
// the scan ran to the end.
func (q *vendingQueriesImpl) SearchAll(_ context.Context, query vending.SearchQuery, visit func(vending.SearchResult) bool) bool {
	for _, shop := range q.registry.Snapshot() {
		if shop.IsClosed() {
			continue
		}
		seller, ok := q.sessions.ByCharID(shop.Seller().CharID)
		if !ok {
			continue
		}
		if !query.Scan(shop, seller, q.catalog, visit) {
			return false
		}
	}
	return true
}

func (q *vendingQueriesImpl) Search(ctx context.Context, query vending.SearchQuery, limit int) ([]vending.SearchResult, bool) {
	var out []vending.SearchResult
	exhausted := q.SearchAll(ctx, query, func(r vending.SearchResult) bool {
		out = append(out, r)
		return limit <= 0 || len(out) < limit
	})
	return out, exhausted
}

// SelectResult grants the buyer one purchase from the selected seller
// regardless of distance.
func (q *vendingQueriesImpl) SelectResult(_ context.Context, buyerCharID, sellerAccountID int32, shopID vending.ShopID) error {
	buyer, ok := q.sessions.ByCharID(buyerCharID)
	if !ok {
		return shared.ErrCharacterOffline
	}
	seller, ok := q.sessions.ByAccountID(sellerAccountID)
	if !ok || !seller.IsVending() {
		return vending.ErrShopNotFound
	}
	shop, ok := q.registry.Lookup(seller.ID().CharID)
	if !ok {
		return vending.ErrShopNotFound
	}
	if shop.ID() != shopID {
		return vending.ErrShopChanged
	}
	buyer.GrantRemote(sellerAccountID)
	return nil
}

func (q *vendingQueriesImpl) ListShops(_ context.Context) []*ShopView {
	shops := q.registry.Snapshot()
	out := make([]*ShopView, 0, len(shops))
	for _, shop := range shops {
		seller, ok := q.sessions.ByCharID(shop.Seller().CharID)
		if !ok || shop.IsClosed() {
			continue
		}
		out = append(out, q.view(shop, seller))
	}
	return out
}

func (q *vendingQueriesImpl) view(shop *vending.Shop, seller *character.Character) *ShopView {
	lines := shop.Lines()
	v := &ShopView{
		ShopID:          shop.ID(),
		SellerAccountID: shop.Seller().AccountID,
		SellerCharID:    shop.Seller().CharID,
		SellerName:      shop.SellerName(),
		Title:           shop.Title(),
		Position:        shop.Position(),
		Autotrade:       shop.IsAutotrade(),
		Items:           make([]ShopItemView, 0, len(lines)),
	}
	for _, l := range lines {
		s, ok := seller.CartItem(l.CartIndex)
		if !ok {
			continue
		}
		amount := min(l.Amount, s.Amount)
		if amount <= 0 {
			continue
		}
		name := ""
		if def, ok := q.catalog.Lookup(s.NameID); ok {
			name = def.Name
		}
		v.Items = append(v.Items, ShopItemView{
			CartIndex: l.CartIndex,
			NameID:    s.NameID,
			Name:      name,
			Amount:    amount,
			Price:     l.Price,
			Refine:    s.Refine,
			Cards:     s.Cards,
		})
	}
	return v
}
