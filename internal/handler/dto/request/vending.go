package request

import (
	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
)

type OpenShopItem struct {
	CartIndex int   `json:"cart_index" binding:"min=0"`
	Amount    int   `json:"amount" binding:"required,min=1"`
	Price     int64 `json:"price" binding:"min=0"`
}

type OpenShopRequest struct {
	Title string         `json:"title" binding:"required"`
	Items []OpenShopItem `json:"items" binding:"required,min=1,dive"`
}

func (r OpenShopRequest) ToLines() []vending.RequestedLine {
	lines := make([]vending.RequestedLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, vending.RequestedLine{CartIndex: it.CartIndex, Amount: it.Amount, Price: it.Price})
	}
	return lines
}

// PurchaseItem is not range-checked here; the purchase path reports
// malformed lines with its own reason codes.
type PurchaseItem struct {
	CartIndex int `json:"cart_index"`
	Amount    int `json:"amount"`
}

type PurchaseRequest struct {
	SellerAccountID int32          `json:"seller_account_id" binding:"required"`
	ShopID          int32          `json:"shop_id" binding:"required"`
	Items           []PurchaseItem `json:"items"`
}

func (r PurchaseRequest) ToLines() []vending.PurchaseLine {
	lines := make([]vending.PurchaseLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, vending.PurchaseLine{CartIndex: it.CartIndex, Amount: it.Amount})
	}
	return lines
}

type SearchRequest struct {
	ItemIDs  []int32 `json:"item_ids" binding:"required,min=1,dive,gt=0"`
	MinPrice int64   `json:"min_price" binding:"min=0"`
	MaxPrice int64   `json:"max_price" binding:"min=0"`
	Cards    []int32 `json:"cards" binding:"max=4"`
	Limit    int     `json:"limit" binding:"min=0,max=100"`
}

const DefaultSearchLimit = 10

func (r SearchRequest) ToQuery() vending.SearchQuery {
	ids := make([]item.NameID, 0, len(r.ItemIDs))
	for _, id := range r.ItemIDs {
		ids = append(ids, item.NameID(id))
	}
	return vending.SearchQuery{ItemIDs: ids, MinPrice: r.MinPrice, MaxPrice: r.MaxPrice, Cards: r.Cards}
}

func (r SearchRequest) EffectiveLimit() int {
	if r.Limit == 0 {
		return DefaultSearchLimit
	}
	return r.Limit
}

type SelectResultRequest struct {
	SellerAccountID int32 `json:"seller_account_id" binding:"required"`
	ShopID          int32 `json:"shop_id" binding:"required"`
}
