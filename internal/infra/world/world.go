package world

import (
	"sort"
	"sync"

	"vending-server/internal/domain/character"
	"vending-server/internal/usecase/shared"
)

// World is the in-memory table of resident characters, indexed by
// character id and by account id. One account has at most one resident
// character.
type World struct {
	mu        sync.RWMutex
	byChar    map[int32]*character.Character
	byAccount map[int32]*character.Character
}

var _ shared.Sessions = (*World)(nil)

func New() *World {
	return &World{
		byChar:    make(map[int32]*character.Character),
		byAccount: make(map[int32]*character.Character),
	}
}

func (w *World) ByCharID(charID int32) (*character.Character, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.byChar[charID]
	return c, ok
}

func (w *World) ByAccountID(accountID int32) (*character.Character, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.byAccount[accountID]
	return c, ok
}

func (w *World) Attach(c *character.Character) error {
	id := c.ID()
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.byChar[id.CharID]; ok {
		return shared.ErrAlreadyOnline
	}
	if _, ok := w.byAccount[id.AccountID]; ok {
		return shared.ErrAlreadyOnline
	}
	w.byChar[id.CharID] = c
	w.byAccount[id.AccountID] = c
	return nil
}

func (w *World) Detach(charID int32) (*character.Character, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.byChar[charID]
	if !ok {
		return nil, false
	}
	delete(w.byChar, charID)
	if cur, ok := w.byAccount[c.ID().AccountID]; ok && cur == c {
		delete(w.byAccount, c.ID().AccountID)
	}
	return c, true
}

// All lists resident characters ordered by character id.
func (w *World) All() []*character.Character {
	w.mu.RLock()
	out := make([]*character.Character, 0, len(w.byChar))
	for _, c := range w.byChar {
		out = append(out, c)
	}
	w.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID().CharID < out[j].ID().CharID })
	return out
}

func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.byChar)
}
