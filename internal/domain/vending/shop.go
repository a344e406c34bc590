package vending

import (
	"sync"
	"sync/atomic"

	"vending-server/internal/domain/character"
)

// ShopID identifies one shop generation for the lifetime of the process.
// Ids restart at 1 on every boot and are never reused within a run.
type ShopID int32

// IDAllocator hands out ShopIDs.
type IDAllocator struct {
	last atomic.Int32
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

func (a *IDAllocator) Next() ShopID {
	return ShopID(a.last.Add(1))
}

// Reserve makes every later Next return an id above floor.
func (a *IDAllocator) Reserve(floor ShopID) {
	for {
		cur := a.last.Load()
		if cur >= int32(floor) || a.last.CompareAndSwap(cur, int32(floor)) {
			return
		}
	}
}

// Line is one offer of a shop: a cart slot, the amount still for sale and
// the unit price fixed when the shop opened.
type Line struct {
	CartIndex int   `json:"cart_index"`
	Amount    int   `json:"amount"`
	Price     int64 `json:"price"`
}

type Display struct {
	Facing  character.Facing
	Sitting bool
}

// Shop is the in-memory listing of one seller. The line sequence is
// guarded by the shop lock; identity fields never change after open.
type Shop struct {
	mu     sync.Mutex
	writes sync.Mutex

	id       ShopID
	seller   character.ID
	name     string
	position character.Position
	title    string

	display   Display
	autotrade bool
	lines     []Line
	soldOut   []int
	closed    bool
}

func NewShop(id ShopID, seller *character.Character, title string, lines []Line) *Shop {
	owned := make([]Line, len(lines))
	copy(owned, lines)
	return &Shop{
		id:        id,
		seller:    seller.ID(),
		name:      seller.Name(),
		position:  seller.Position(),
		title:     title,
		display:   Display{Facing: seller.Facing(), Sitting: seller.IsSitting()},
		autotrade: seller.IsAutotrader(),
		lines:     owned,
	}
}

func (s *Shop) Lock()   { s.mu.Lock() }
func (s *Shop) Unlock() { s.mu.Unlock() }

// LockWrites orders the persistence of this shop's changes. Taken before
// the shop lock is released, it makes writes land in commit order. It is
// never held while acquiring the shop lock.
func (s *Shop) LockWrites()   { s.writes.Lock() }
func (s *Shop) UnlockWrites() { s.writes.Unlock() }

func (s *Shop) ID() ShopID                   { return s.id }
func (s *Shop) Seller() character.ID         { return s.seller }
func (s *Shop) SellerName() string           { return s.name }
func (s *Shop) Position() character.Position { return s.position }
func (s *Shop) Title() string                { return s.title }

func (s *Shop) Display() Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display
}

func (s *Shop) SetDisplay(d Display) {
	s.mu.Lock()
	s.display = d
	s.mu.Unlock()
}

func (s *Shop) IsAutotrade() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autotrade
}

func (s *Shop) SetAutotrade(on bool) {
	s.mu.Lock()
	s.autotrade = on
	s.mu.Unlock()
}

// Lines returns a copy of the current line sequence.
func (s *Shop) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LinesLocked()
}

// LinesLocked is Lines for callers already holding the shop lock.
func (s *Shop) LinesLocked() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Shop) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// ClosedLocked requires the shop lock.
func (s *Shop) ClosedLocked() bool {
	return s.closed
}

// MarkClosed flags the shop so that in-flight purchases which already
// resolved it from the registry fail instead of mutating it.
func (s *Shop) MarkClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// DecrementLocked removes amount from line i and returns what remains.
// Requires the shop lock.
func (s *Shop) DecrementLocked(i, amount int) int {
	s.lines[i].Amount -= amount
	if s.lines[i].Amount < 0 {
		s.lines[i].Amount = 0
	}
	return s.lines[i].Amount
}

// CompactLocked drops lines with nothing left, keeping relative order, and
// reports whether any line remains. Dropped cart indexes are remembered as
// sold out. Requires the shop lock.
func (s *Shop) CompactLocked() bool {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Amount > 0 {
			kept = append(kept, l)
			continue
		}
		s.soldOut = append(s.soldOut, l.CartIndex)
	}
	for i := len(kept); i < len(s.lines); i++ {
		s.lines[i] = Line{}
	}
	s.lines = kept
	return len(s.lines) > 0
}

// SoldOutLocked lists the cart indexes whose lines were compacted away.
// Requires the shop lock.
func (s *Shop) SoldOutLocked() []int {
	out := make([]int, len(s.soldOut))
	copy(out, s.soldOut)
	return out
}
