package vending

import (
	"unicode/utf8"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/item"
)

// RequestedLine is one offer as the seller asked for it, before filtering.
type RequestedLine struct {
	CartIndex int   `json:"cart_index"`
	Amount    int   `json:"amount"`
	Price     int64 `json:"price"`
}

// SellerView is what the open path reads from the seller's live state.
type SellerView interface {
	CartItem(index int) (item.Stack, bool)
	CanTradeBound() bool
	GroupLevel() int
}

// ShopSize is the number of lines a seller with the given vending skill
// level may offer, capped by the server-wide maximum.
func ShopSize(skillLevel, maxItems int) int {
	n := 2 + skillLevel
	if n > maxItems {
		return maxItems
	}
	return n
}

// ValidateCount checks the raw requested line count against the shop size.
func ValidateCount(count, skillLevel, maxItems int) error {
	if count < 1 || count > ShopSize(skillLevel, maxItems) {
		return ErrInvalidItemCount
	}
	return nil
}

// FilterLines keeps the requested lines the seller may actually sell and
// reports how many were dropped. Prices above maxValue are clamped.
// Duplicated cart indexes keep their first occurrence.
func FilterLines(seller SellerView, catalog item.Catalog, req []RequestedLine, maxValue int64) ([]Line, int) {
	kept := make([]Line, 0, len(req))
	seen := make(map[int]struct{}, len(req))
	for _, r := range req {
		if _, dup := seen[r.CartIndex]; dup {
			continue
		}
		if !sellable(seller, catalog, r) {
			continue
		}
		seen[r.CartIndex] = struct{}{}
		price := r.Price
		if price > maxValue {
			price = maxValue
		}
		kept = append(kept, Line{CartIndex: r.CartIndex, Amount: r.Amount, Price: price})
	}
	return kept, len(req) - len(kept)
}

func sellable(seller SellerView, catalog item.Catalog, r RequestedLine) bool {
	if r.CartIndex < 0 || r.CartIndex >= character.MaxCart || r.Amount <= 0 || r.Price < 0 {
		return false
	}
	s, ok := seller.CartItem(r.CartIndex)
	if !ok || s.Amount < r.Amount {
		return false
	}
	if !s.Identified || s.Broken || s.ExpireTime != 0 {
		return false
	}
	if s.Bound && !seller.CanTradeBound() {
		return false
	}
	def, ok := catalog.Lookup(s.NameID)
	if !ok {
		return false
	}
	return def.CanTrade(seller.GroupLevel())
}

// TruncateTitle cuts title to at most max bytes without splitting a rune.
func TruncateTitle(title string, max int) string {
	if max <= 0 || len(title) <= max {
		return title
	}
	cut := title[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
