package vending

import (
	"slices"

	"vending-server/internal/domain/item"
)

// SearchQuery selects lines across every open shop. Zero price bounds are
// unbounded; an empty card list disables card filtering.
type SearchQuery struct {
	ItemIDs  []item.NameID `json:"item_ids"`
	MinPrice int64         `json:"min_price"`
	MaxPrice int64         `json:"max_price"`
	Cards    []int32       `json:"cards"`
}

type SearchResult struct {
	ShopID          ShopID               `json:"shop_id"`
	SellerAccountID int32                `json:"seller_account_id"`
	SellerCharID    int32                `json:"seller_char_id"`
	Title           string               `json:"title"`
	NameID          item.NameID          `json:"name_id"`
	Amount          int                  `json:"amount"`
	Price           int64                `json:"price"`
	Refine          int                  `json:"refine"`
	Cards           [item.MaxSlots]int32 `json:"cards"`
}

// Scan visits matching lines of one shop. For every queried item id only
// the first line selling it is considered. It returns false once visit
// asks to stop.
func (q SearchQuery) Scan(shop *Shop, cart CartView, catalog item.Catalog, visit func(SearchResult) bool) bool {
	lines := shop.Lines()
	for _, id := range q.ItemIDs {
		var (
			line  Line
			stack item.Stack
			found bool
		)
		for _, l := range lines {
			s, ok := cart.CartItem(l.CartIndex)
			if ok && s.NameID == id {
				line, stack, found = l, s, true
				break
			}
		}
		if !found || !q.priceMatches(line.Price) || !q.cardsMatch(stack, catalog) {
			continue
		}
		cont := visit(SearchResult{
			ShopID:          shop.ID(),
			SellerAccountID: shop.Seller().AccountID,
			SellerCharID:    shop.Seller().CharID,
			Title:           shop.Title(),
			NameID:          stack.NameID,
			Amount:          line.Amount,
			Price:           line.Price,
			Refine:          stack.Refine,
			Cards:           stack.Cards,
		})
		if !cont {
			return false
		}
	}
	return true
}

func (q SearchQuery) priceMatches(price int64) bool {
	if q.MinPrice > 0 && price < q.MinPrice {
		return false
	}
	if q.MaxPrice > 0 && price > q.MaxPrice {
		return false
	}
	return true
}

// cardsMatch: crafted items carry no real cards and never match a card
// filter; otherwise one matching card in a used slot is enough.
func (q SearchQuery) cardsMatch(s item.Stack, catalog item.Catalog) bool {
	if len(q.Cards) == 0 {
		return true
	}
	if item.IsSpecialCard(s.Cards[0]) {
		return false
	}
	def, ok := catalog.Lookup(s.NameID)
	if !ok {
		return false
	}
	slots := min(def.Slots, item.MaxSlots)
	for c := 0; c < slots && s.Cards[c] != 0; c++ {
		if slices.Contains(q.Cards, s.Cards[c]) {
			return true
		}
	}
	return false
}
