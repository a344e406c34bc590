package character

import (
	"errors"
	"fmt"
	"sync"

	"vending-server/internal/domain/item"
)

const (
	MaxCart      = 100
	MaxInventory = 100
)

var (
	ErrInsufficientZeny = errors.New("insufficient zeny")
	ErrZenyOverflow     = errors.New("zeny overflow")
	ErrOverweight       = errors.New("overweight")
)

// ID is the account+character composite identifying one character.
type ID struct {
	AccountID int32 `json:"account_id"`
	CharID    int32 `json:"char_id"`
}

func (id ID) String() string {
	return fmt.Sprintf("%d:%d", id.AccountID, id.CharID)
}

func (id ID) IsZero() bool {
	return id.AccountID == 0 && id.CharID == 0
}

type Sex uint8

const (
	SexFemale Sex = iota
	SexMale
)

func (s Sex) Letter() string {
	if s == SexFemale {
		return "F"
	}
	return "M"
}

func ParseSex(letter string) Sex {
	if letter == "F" {
		return SexFemale
	}
	return SexMale
}

// Kind separates live connections from synthesized unattended sellers.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindAutotrader
)

func (k Kind) String() string {
	if k == KindAutotrader {
		return "autotrader"
	}
	return "player"
}

type Position struct {
	Map string `json:"map"`
	X   int    `json:"x"`
	Y   int    `json:"y"`
}

// Within reports whether o is on the same map and inside a square of the
// given half-size around p.
func (p Position) Within(o Position, area int) bool {
	if p.Map != o.Map {
		return false
	}
	return abs(p.X-o.X) <= area && abs(p.Y-o.Y) <= area
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type Facing struct {
	Body uint8 `json:"body"`
	Head uint8 `json:"head"`
}

// Character is the live, mutable state of one character resident in the
// world. Field access is guarded by mu; trade sequences that debit or
// credit this character additionally hold tx via Lock/Unlock.
type Character struct {
	mu   sync.RWMutex
	tx   sync.Mutex
	vend sync.Mutex
	save sync.Mutex

	id   ID
	name string
	sex  Sex
	kind Kind

	pos     Position
	facing  Facing
	sitting bool

	dead    bool
	preVend bool
	vending bool
	trading bool
	cartOn  bool

	vendingSkill  int
	groupLevel    int
	canGiveItems  bool
	canTradeBound bool

	shopID       int32
	viewedShopID int32
	remoteSeller int32

	zeny      int64
	weight    int
	maxWeight int

	cart      *item.Container
	inventory *item.Container
}

func (c *Character) Lock()   { c.tx.Lock() }
func (c *Character) Unlock() { c.tx.Unlock() }

// LockVending serializes shop open and close for this character.
func (c *Character) LockVending()   { c.vend.Lock() }
func (c *Character) UnlockVending() { c.vend.Unlock() }

// LockSave is held from snapshot to store so checkpoints are stored in the
// order they were taken.
func (c *Character) LockSave()   { c.save.Lock() }
func (c *Character) UnlockSave() { c.save.Unlock() }

func (c *Character) ID() ID {
	return c.id
}

func (c *Character) Name() string {
	return c.name
}

func (c *Character) Sex() Sex {
	return c.sex
}

func (c *Character) Kind() Kind {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kind
}

func (c *Character) IsAutotrader() bool {
	return c.Kind() == KindAutotrader
}

// MarkAutotrader detaches the character from its connection; it stays
// resident as an unattended seller.
func (c *Character) MarkAutotrader() {
	c.mu.Lock()
	c.kind = KindAutotrader
	c.mu.Unlock()
}

func (c *Character) Position() Position {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pos
}

func (c *Character) SetPosition(p Position) {
	c.mu.Lock()
	c.pos = p
	c.mu.Unlock()
}

func (c *Character) Facing() Facing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.facing
}

func (c *Character) SetFacing(f Facing) {
	c.mu.Lock()
	c.facing = f
	c.mu.Unlock()
}

func (c *Character) IsSitting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sitting
}

func (c *Character) SetSitting(sit bool) {
	c.mu.Lock()
	c.sitting = sit
	c.mu.Unlock()
}

func (c *Character) IsDead() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dead
}

func (c *Character) SetDead(dead bool) {
	c.mu.Lock()
	c.dead = dead
	c.mu.Unlock()
}

func (c *Character) IsTrading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trading
}

func (c *Character) SetTrading(trading bool) {
	c.mu.Lock()
	c.trading = trading
	c.mu.Unlock()
}

func (c *Character) HasCart() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cartOn
}

func (c *Character) VendingSkill() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vendingSkill
}

func (c *Character) GroupLevel() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.groupLevel
}

func (c *Character) CanGiveItems() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canGiveItems
}

func (c *Character) CanTradeBound() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canTradeBound
}

// --- vending state ----------------------------------------------------------

func (c *Character) IsPreVending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preVend
}

func (c *Character) SetPreVending(on bool) {
	c.mu.Lock()
	c.preVend = on
	c.mu.Unlock()
}

func (c *Character) IsVending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vending
}

// ShopID is the id of the shop this character currently runs, 0 if none.
func (c *Character) ShopID() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shopID
}

// BeginVending moves the character from the pre-vend state to vending.
func (c *Character) BeginVending(shopID int32) {
	c.mu.Lock()
	c.preVend = false
	c.vending = true
	c.shopID = shopID
	c.mu.Unlock()
}

// EndVending clears the vending state and returns the shop id it held.
func (c *Character) EndVending() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.shopID
	c.vending = false
	c.shopID = 0
	return id
}

func (c *Character) ViewedShopID() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewedShopID
}

func (c *Character) SetViewedShop(shopID int32) {
	c.mu.Lock()
	c.viewedShopID = shopID
	c.mu.Unlock()
}

// ForgetViewedShop drops the cached shop reference if it points at shopID.
func (c *Character) ForgetViewedShop(shopID int32) {
	c.mu.Lock()
	if c.viewedShopID == shopID {
		c.viewedShopID = 0
	}
	c.mu.Unlock()
}

// GrantRemote lets this character buy once from sellerAccountID regardless
// of distance.
func (c *Character) GrantRemote(sellerAccountID int32) {
	c.mu.Lock()
	c.remoteSeller = sellerAccountID
	c.mu.Unlock()
}

// ConsumeRemote reports whether a remote grant for sellerAccountID was held
// and clears any grant either way.
func (c *Character) ConsumeRemote(sellerAccountID int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	ok := c.remoteSeller != 0 && c.remoteSeller == sellerAccountID
	c.remoteSeller = 0
	return ok
}

// --- currency ---------------------------------------------------------------

func (c *Character) Zeny() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zeny
}

func (c *Character) SubZeny(amount int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if amount < 0 || c.zeny < amount {
		return ErrInsufficientZeny
	}
	c.zeny -= amount
	return nil
}

// AddZeny credits amount, clamping at maxZeny when clamp is set and failing
// otherwise.
func (c *Character) AddZeny(amount, maxZeny int64, clamp bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if amount < 0 {
		return ErrZenyOverflow
	}
	if c.zeny > maxZeny-amount {
		if !clamp {
			return ErrZenyOverflow
		}
		c.zeny = maxZeny
		return nil
	}
	c.zeny += amount
	return nil
}

// --- cart / inventory -------------------------------------------------------

func (c *Character) Weight() (current, limit int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weight, c.maxWeight
}

func (c *Character) CartItem(index int) (item.Stack, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cart.Get(index)
}

func (c *Character) CartAmount(index int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cart.Amount(index)
}

func (c *Character) FindCartRow(rowID int64) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cart.FindRow(rowID)
}

func (c *Character) InventoryFreeSlots() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inventory.FreeSlots()
}

func (c *Character) CheckAddItem(s item.Stack, amount int, stackable bool) item.AddCheck {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inventory.CheckAdd(s, amount, stackable)
}

func (c *Character) InventoryItem(index int) (item.Stack, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inventory.Get(index)
}

// InventoryAmountOf sums every inventory stack of the given item.
func (c *Character) InventoryAmountOf(id item.NameID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, s := range c.inventory.Stacks() {
		if !s.IsEmpty() && s.NameID == id {
			n += s.Amount
		}
	}
	return n
}

func (c *Character) TakeFromCart(index, amount int) (item.Stack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Remove(index, amount)
}

// PutInCart is the inverse of TakeFromCart, used to undo a transfer the
// receiving side rejected.
func (c *Character) PutInCart(s item.Stack, stackable bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.cart.Add(s, stackable)
	return err
}

// AddToInventory stores s and accounts unitWeight per unit.
func (c *Character) AddToInventory(s item.Stack, unitWeight int, stackable bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	added := unitWeight * s.Amount
	if c.weight+added > c.maxWeight {
		return ErrOverweight
	}
	if _, err := c.inventory.Add(s, stackable); err != nil {
		return err
	}
	c.weight += added
	return nil
}
