//go:build unit || e2e || integration

package builder

import (
	"vending-server/internal/domain/character"
	"vending-server/internal/domain/item"
)

type CharacterBuilder struct {
	Snapshot character.Snapshot
}

// NewCharacterBuilder returns a merchant standing in Prontera with a cart
// equipped, vending skill 10 and an empty cart and inventory.
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		Snapshot: character.Snapshot{
			ID:           character.ID{AccountID: 2000001, CharID: 150001},
			Name:         "Merchant",
			Sex:          character.SexMale,
			Position:     character.Position{Map: "prontera", X: 150, Y: 150},
			Facing:       character.Facing{Body: 4},
			CartOn:       true,
			VendingSkill: 10,
			CanGiveItems: true,
			MaxWeight:    80000,
		},
	}
}

// NewBuyerBuilder returns a plain character next to the default merchant.
func NewBuyerBuilder() *CharacterBuilder {
	return NewCharacterBuilder().With(func(b *CharacterBuilder) {
		b.Snapshot.ID = character.ID{AccountID: 2000002, CharID: 150002}
		b.Snapshot.Name = "Buyer"
		b.Snapshot.Position = character.Position{Map: "prontera", X: 152, Y: 151}
		b.Snapshot.CartOn = false
		b.Snapshot.VendingSkill = 0
	})
}

func (b *CharacterBuilder) With(mutate func(*CharacterBuilder)) *CharacterBuilder {
	mutate(b)
	return b
}

func (b *CharacterBuilder) WithID(accountID, charID int32) *CharacterBuilder {
	b.Snapshot.ID = character.ID{AccountID: accountID, CharID: charID}
	return b
}

func (b *CharacterBuilder) WithZeny(zeny int64) *CharacterBuilder {
	b.Snapshot.Zeny = zeny
	return b
}

func (b *CharacterBuilder) WithCart(stacks ...item.Stack) *CharacterBuilder {
	b.Snapshot.Cart = append([]item.Stack(nil), stacks...)
	return b
}

func (b *CharacterBuilder) WithInventory(stacks ...item.Stack) *CharacterBuilder {
	b.Snapshot.Inventory = append([]item.Stack(nil), stacks...)
	return b
}

func (b *CharacterBuilder) At(mapName string, x, y int) *CharacterBuilder {
	b.Snapshot.Position = character.Position{Map: mapName, X: x, Y: y}
	return b
}

func (b *CharacterBuilder) BuildSnapshot() character.Snapshot {
	return b.Snapshot
}

func (b *CharacterBuilder) Build() *character.Character {
	return character.FromSnapshot(b.Snapshot, character.KindPlayer)
}

func (b *CharacterBuilder) BuildAutotrader() *character.Character {
	return character.FromSnapshot(b.Snapshot, character.KindAutotrader)
}

// Stack builds an identified stack; rowID doubles as the persistent cart row.
func Stack(rowID int64, nameID item.NameID, amount int) item.Stack {
	return item.Stack{RowID: rowID, NameID: nameID, Amount: amount, Identified: true}
}
