package vending

import (
	"sort"
	"sync"
)

// Registry maps a seller's character id to the shop it is running. It is
// the single source of truth for "is this seller vending".
type Registry struct {
	mu    sync.RWMutex
	shops map[int32]*Shop
	ids   *IDAllocator
}

func NewRegistry(ids *IDAllocator) *Registry {
	return &Registry{
		shops: make(map[int32]*Shop),
		ids:   ids,
	}
}

// NextID allocates the id for a shop about to be registered.
func (r *Registry) NextID() ShopID {
	return r.ids.Next()
}

// ReserveIDs keeps later shop ids above floor.
func (r *Registry) ReserveIDs(floor ShopID) {
	r.ids.Reserve(floor)
}

func (r *Registry) Register(shop *Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[shop.seller.CharID]; ok {
		return ErrAlreadyVending
	}
	r.shops[shop.seller.CharID] = shop
	return nil
}

// Remove unregisters the seller's shop and marks it closed. It returns nil
// when the seller had no shop.
func (r *Registry) Remove(charID int32) *Shop {
	r.mu.Lock()
	shop, ok := r.shops[charID]
	if ok {
		delete(r.shops, charID)
	}
	r.mu.Unlock()

	if !ok {
		return nil
	}
	shop.MarkClosed()
	return shop
}

func (r *Registry) Lookup(charID int32) (*Shop, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shop, ok := r.shops[charID]
	return shop, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shops)
}

// Snapshot lists the registered shops ordered by shop id. The slice is a
// point-in-time copy; shops in it may close while the caller iterates.
func (r *Registry) Snapshot() []*Shop {
	r.mu.RLock()
	out := make([]*Shop, 0, len(r.shops))
	for _, s := range r.shops {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
