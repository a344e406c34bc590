package item

// NameID is the item database id shared by every stack of the same item.
type NameID int32

const (
	// MaxSlots is the number of card slots carried by a stack.
	MaxSlots = 4
	// MaxAmount caps a single inventory stack.
	MaxAmount = 30000
)

// First-card markers used by forged, brewed and pet-egg items. Such items
// carry crafting data in their card slots rather than real cards.
const (
	CardForge  int32 = 0x00FF
	CardCreate int32 = 0x00FE
	CardPet    int32 = -256
)

func IsSpecialCard(card int32) bool {
	return card == CardForge || card == CardCreate || card == CardPet
}

type Stack struct {
	RowID      int64           `json:"row_id"`
	NameID     NameID          `json:"name_id"`
	Amount     int             `json:"amount"`
	Identified bool            `json:"identified"`
	Broken     bool            `json:"broken"`
	Refine     int             `json:"refine"`
	Cards      [MaxSlots]int32 `json:"cards"`
	ExpireTime int64           `json:"expire_time,omitempty"`
	Bound      bool            `json:"bound,omitempty"`
}

func (s Stack) IsEmpty() bool {
	return s.NameID == 0 || s.Amount <= 0
}

// sameKind reports whether two stacks may merge into one slot.
func (s Stack) sameKind(o Stack) bool {
	return s.NameID == o.NameID &&
		s.Identified == o.Identified &&
		s.Broken == o.Broken &&
		s.Refine == o.Refine &&
		s.Cards == o.Cards &&
		s.Bound == o.Bound &&
		s.ExpireTime == 0 && o.ExpireTime == 0
}

type Definition struct {
	NameID    NameID `yaml:"id"`
	Name      string `yaml:"name"`
	Weight    int    `yaml:"weight"`
	Slots     int    `yaml:"slots"`
	Stackable bool   `yaml:"stackable"`
	NoTrade   bool   `yaml:"no_trade"`
	// TradeOverride lets accounts at or above this group level trade a
	// NoTrade item. Zero means nobody may.
	TradeOverride int `yaml:"trade_override"`
}

func (d Definition) CanTrade(groupLevel int) bool {
	if !d.NoTrade {
		return true
	}
	return d.TradeOverride > 0 && groupLevel >= d.TradeOverride
}

type Catalog interface {
	Lookup(id NameID) (Definition, bool)
}

// AddCheck is the result of asking whether an inventory can take an item.
type AddCheck uint8

const (
	AddExists AddCheck = iota
	AddNewStack
	AddOverAmount
)

func (c AddCheck) String() string {
	switch c {
	case AddExists:
		return "exists"
	case AddNewStack:
		return "new_stack"
	case AddOverAmount:
		return "over_amount"
	default:
		return "unknown"
	}
}
