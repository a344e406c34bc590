//go:build unit || e2e || integration

package builder

import (
	"vending-server/internal/domain/item"
	"vending-server/internal/infra/itemdb"
)

const (
	RedPotion  item.NameID = 501
	Apple      item.NameID = 512
	Knife      item.NameID = 1201
	PoringCard item.NameID = 4001
	TCGCard    item.NameID = 7227
)

func DefaultDefinitions() []item.Definition {
	return []item.Definition{
		{NameID: RedPotion, Name: "Red Potion", Weight: 70, Stackable: true},
		{NameID: Apple, Name: "Apple", Weight: 20, Stackable: true},
		{NameID: Knife, Name: "Knife", Weight: 400, Slots: 3},
		{NameID: PoringCard, Name: "Poring Card", Weight: 10, Stackable: true},
		{NameID: TCGCard, Name: "TCG Card", Weight: 10, Stackable: true, NoTrade: true, TradeOverride: 80},
	}
}

// NewCatalog panics on invalid definitions; it is meant for fixtures only.
func NewCatalog(defs ...item.Definition) *itemdb.DB {
	if len(defs) == 0 {
		defs = DefaultDefinitions()
	}
	db, err := itemdb.New(defs...)
	if err != nil {
		panic(err)
	}
	return db
}
