package item

import "errors"

var (
	ErrInvalidIndex      = errors.New("invalid slot index")
	ErrNotEnoughAmount   = errors.New("not enough amount in slot")
	ErrContainerFull     = errors.New("no free slot")
	ErrStackAmountExceed = errors.New("stack amount exceeded")
)

// Container is a fixed-capacity, index-addressed set of stacks such as a
// cart or an inventory. It is not safe for concurrent use; owners guard it.
type Container struct {
	slots     []Stack
	nextRowID int64
}

func NewContainer(capacity int) *Container {
	return &Container{slots: make([]Stack, capacity), nextRowID: 1}
}

// RestoreContainer rebuilds a container from persisted slots, keeping
// the slot positions and row ids.
func RestoreContainer(capacity int, stacks []Stack) *Container {
	c := NewContainer(capacity)
	for i, s := range stacks {
		if i >= capacity {
			break
		}
		c.slots[i] = s
		if s.RowID >= c.nextRowID {
			c.nextRowID = s.RowID + 1
		}
	}
	return c
}

func (c *Container) Capacity() int {
	return len(c.slots)
}

func (c *Container) Get(index int) (Stack, bool) {
	if index < 0 || index >= len(c.slots) || c.slots[index].IsEmpty() {
		return Stack{}, false
	}
	return c.slots[index], true
}

func (c *Container) Amount(index int) int {
	s, ok := c.Get(index)
	if !ok {
		return 0
	}
	return s.Amount
}

// FindRow locates the slot holding the stack with the given row id.
func (c *Container) FindRow(rowID int64) (int, bool) {
	for i, s := range c.slots {
		if !s.IsEmpty() && s.RowID == rowID {
			return i, true
		}
	}
	return -1, false
}

func (c *Container) FreeSlots() int {
	n := 0
	for _, s := range c.slots {
		if s.IsEmpty() {
			n++
		}
	}
	return n
}

// CheckAdd reports how amount units of the kind of s would land: merged
// into an existing stack, in a new slot, or not at all.
func (c *Container) CheckAdd(s Stack, amount int, stackable bool) AddCheck {
	if amount > MaxAmount {
		return AddOverAmount
	}
	if !stackable {
		return AddNewStack
	}
	for _, cur := range c.slots {
		if cur.IsEmpty() || !cur.sameKind(s) {
			continue
		}
		if cur.Amount+amount > MaxAmount {
			return AddOverAmount
		}
		return AddExists
	}
	return AddNewStack
}

// Remove takes amount units out of the slot and returns the removed part.
func (c *Container) Remove(index, amount int) (Stack, error) {
	s, ok := c.Get(index)
	if !ok {
		return Stack{}, ErrInvalidIndex
	}
	if amount <= 0 || s.Amount < amount {
		return Stack{}, ErrNotEnoughAmount
	}
	taken := s
	taken.Amount = amount
	c.slots[index].Amount -= amount
	if c.slots[index].Amount == 0 {
		c.slots[index] = Stack{}
	}
	return taken, nil
}

// Add stores s, merging into an existing stack when stackable.
func (c *Container) Add(s Stack, stackable bool) (int, error) {
	if s.IsEmpty() {
		return -1, ErrNotEnoughAmount
	}
	if stackable {
		for i, cur := range c.slots {
			if cur.IsEmpty() || !cur.sameKind(s) {
				continue
			}
			if cur.Amount+s.Amount > MaxAmount {
				return -1, ErrStackAmountExceed
			}
			c.slots[i].Amount += s.Amount
			return i, nil
		}
	}
	for i, cur := range c.slots {
		if !cur.IsEmpty() {
			continue
		}
		s.RowID = c.nextRowID
		c.nextRowID++
		c.slots[i] = s
		return i, nil
	}
	return -1, ErrContainerFull
}

// Stacks returns a copy of every slot, empty ones included, so that
// positions survive a save/load round trip.
func (c *Container) Stacks() []Stack {
	out := make([]Stack, len(c.slots))
	copy(out, c.slots)
	return out
}
