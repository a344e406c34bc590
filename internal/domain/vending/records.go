package vending

import (
	"vending-server/internal/domain/character"
)

// ShopHeader is the persisted row describing one shop.
type ShopHeader struct {
	ShopID    ShopID
	Seller    character.ID
	Sex       character.Sex
	Position  character.Position
	Title     string
	Autotrade bool
	Display   Display
}

// LineRecord is the persisted row of one shop line. Lines are keyed by the
// cart row id, which survives cart reordering between sessions.
type LineRecord struct {
	ShopID    ShopID
	Index     int
	CartRowID int64
	Amount    int
	Price     int64
}

// AutotradeEntry is one persisted line of an unattended shop.
type AutotradeEntry struct {
	CartRowID int64
	Amount    int
	Price     int64
}

// AutotradeRecord is a persisted unattended shop waiting to be replayed.
type AutotradeRecord struct {
	Header  ShopHeader
	Entries []AutotradeEntry
}

// HeaderOf describes shop as it should be stored.
func HeaderOf(shop *Shop, sex character.Sex) ShopHeader {
	shop.Lock()
	defer shop.Unlock()
	return ShopHeader{
		ShopID:    shop.id,
		Seller:    shop.seller,
		Sex:       sex,
		Position:  shop.position,
		Title:     shop.title,
		Autotrade: shop.autotrade,
		Display:   shop.display,
	}
}
