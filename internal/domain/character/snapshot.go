package character

import (
	"vending-server/internal/domain/item"
)

// Snapshot is the persisted form of a character: what the character store
// saves on checkpoint and what a session is rebuilt from.
type Snapshot struct {
	ID            ID           `json:"id"`
	Name          string       `json:"name"`
	Sex           Sex          `json:"sex"`
	Position      Position     `json:"position"`
	Facing        Facing       `json:"facing"`
	Sitting       bool         `json:"sitting"`
	CartOn        bool         `json:"cart_on"`
	VendingSkill  int          `json:"vending_skill"`
	GroupLevel    int          `json:"group_level"`
	CanGiveItems  bool         `json:"can_give_items"`
	CanTradeBound bool         `json:"can_trade_bound"`
	Zeny          int64        `json:"zeny"`
	Weight        int          `json:"weight"`
	MaxWeight     int          `json:"max_weight"`
	Cart          []item.Stack `json:"cart"`
	Inventory     []item.Stack `json:"inventory"`
}

// FromSnapshot builds a resident character of the given kind.
func FromSnapshot(s Snapshot, kind Kind) *Character {
	return &Character{
		id:            s.ID,
		name:          s.Name,
		sex:           s.Sex,
		kind:          kind,
		pos:           s.Position,
		facing:        s.Facing,
		sitting:       s.Sitting,
		cartOn:        s.CartOn,
		vendingSkill:  s.VendingSkill,
		groupLevel:    s.GroupLevel,
		canGiveItems:  s.CanGiveItems,
		canTradeBound: s.CanTradeBound,
		zeny:          s.Zeny,
		weight:        s.Weight,
		maxWeight:     s.MaxWeight,
		cart:          item.RestoreContainer(MaxCart, s.Cart),
		inventory:     item.RestoreContainer(MaxInventory, s.Inventory),
	}
}

func (c *Character) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		ID:            c.id,
		Name:          c.name,
		Sex:           c.sex,
		Position:      c.pos,
		Facing:        c.facing,
		Sitting:       c.sitting,
		CartOn:        c.cartOn,
		VendingSkill:  c.vendingSkill,
		GroupLevel:    c.groupLevel,
		CanGiveItems:  c.canGiveItems,
		CanTradeBound: c.canTradeBound,
		Zeny:          c.zeny,
		Weight:        c.weight,
		MaxWeight:     c.maxWeight,
		Cart:          compact(c.cart.Stacks()),
		Inventory:     compact(c.inventory.Stacks()),
	}
}

// compact trims trailing empty slots; interior gaps are kept so cart
// indexes stay stable across a checkpoint.
func compact(stacks []item.Stack) []item.Stack {
	end := len(stacks)
	for end > 0 && stacks[end-1].IsEmpty() {
		end--
	}
	return stacks[:end]
}
