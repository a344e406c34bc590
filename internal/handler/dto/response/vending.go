package response

import (
	"time"

	"github.com/jinzhu/copier"

	"vending-server/internal/domain/vending"
	"vending-server/internal/usecase/commands"
	"vending-server/internal/usecase/queries"
)

type ShopItemResponse struct {
	CartIndex int      `json:"cart_index"`
	NameID    int32    `json:"name_id"`
	Name      string   `json:"name"`
	Amount    int      `json:"amount"`
	Price     int64    `json:"price"`
	Refine    int      `json:"refine"`
	Cards     [4]int32 `json:"cards"`
}

type ShopResponse struct {
	ShopID          int32              `json:"shop_id"`
	SellerAccountID int32              `json:"seller_account_id"`
	SellerCharID    int32              `json:"seller_char_id"`
	SellerName      string             `json:"seller_name"`
	Title           string             `json:"title"`
	Map             string             `json:"map"`
	X               int                `json:"x"`
	Y               int                `json:"y"`
	Autotrade       bool               `json:"autotrade"`
	Items           []ShopItemResponse `json:"items"`
}

type OpenShopResponse struct {
	ShopID int32 `json:"shop_id"`
}

type ReceiptItemResponse struct {
	CartIndex int   `json:"cart_index"`
	NameID    int32 `json:"name_id"`
	Amount    int   `json:"amount"`
	Price     int64 `json:"price"`
}

type PurchaseResponse struct {
	TransactionID string                `json:"transaction_id"`
	ShopID        int32                 `json:"shop_id"`
	Total         int64                 `json:"total"`
	SellerNet     int64                 `json:"seller_net"`
	Items         []ReceiptItemResponse `json:"items"`
	ShopClosed    bool                  `json:"shop_closed"`
}

type SearchResultResponse struct {
	ShopID          int32    `json:"shop_id"`
	SellerAccountID int32    `json:"seller_account_id"`
	SellerCharID    int32    `json:"seller_char_id"`
	Title           string   `json:"title"`
	NameID          int32    `json:"name_id"`
	Amount          int      `json:"amount"`
	Price           int64    `json:"price"`
	Refine          int      `json:"refine"`
	Cards           [4]int32 `json:"cards"`
}

type SearchResponse struct {
	Results []SearchResultResponse `json:"results"`
	// Exhausted is false when the limit cut the scan short.
	Exhausted bool `json:"exhausted"`
}

type SellingResponse struct {
	Selling bool `json:"selling"`
}

type EventResponse struct {
	Kind      string    `json:"kind"`
	ShopID    int32     `json:"shop_id,omitempty"`
	CartIndex int       `json:"cart_index,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Message   string    `json:"message,omitempty"`
	At        time.Time `json:"at"`
}

type SessionResponse struct {
	AccountID int32  `json:"account_id"`
	CharID    int32  `json:"char_id"`
	Name      string `json:"name"`
	Map       string `json:"map"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Zeny      int64  `json:"zeny"`
}

func FromShopView(v *queries.ShopView) (*ShopResponse, error) {
	var res ShopResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.Map, res.X, res.Y = v.Position.Map, v.Position.X, v.Position.Y
	if res.Items == nil {
		res.Items = []ShopItemResponse{}
	}
	return &res, nil
}

func FromShopViews(vs []*queries.ShopView) ([]*ShopResponse, error) {
	out := make([]*ShopResponse, 0, len(vs))
	for _, v := range vs {
		res, err := FromShopView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func FromReceipt(r *commands.PurchaseReceipt) (*PurchaseResponse, error) {
	var res PurchaseResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	res.TransactionID = r.TransactionID.String()
	return &res, nil
}

func FromSearchResults(rs []vending.SearchResult, exhausted bool) (*SearchResponse, error) {
	res := SearchResponse{Results: []SearchResultResponse{}, Exhausted: exhausted}
	if len(rs) == 0 {
		return &res, nil
	}
	if err := copier.Copy(&res.Results, &rs); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromEvents(evs []vending.Event) ([]EventResponse, error) {
	out := []EventResponse{}
	if len(evs) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &evs); err != nil {
		return nil, err
	}
	return out, nil
}
