package vending

import "time"

type EventKind string

const (
	EventShopOpened     EventKind = "shop_opened"
	EventShopClosed     EventKind = "shop_closed"
	EventItemsRemoved   EventKind = "items_removed"
	EventPurchaseOK     EventKind = "purchase_ok"
	EventPurchaseFailed EventKind = "purchase_failed"
	EventStockReport    EventKind = "stock_report"
	EventBuyerName      EventKind = "buyer_name"
)

// Event is an outward notification addressed to one character.
type Event struct {
	Kind      EventKind `json:"kind"`
	ShopID    ShopID    `json:"shop_id,omitempty"`
	CartIndex int       `json:"cart_index,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Message   string    `json:"message,omitempty"`
	At        time.Time `json:"at"`
}
