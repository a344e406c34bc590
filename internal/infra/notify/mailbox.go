package notify

import (
	"sync"

	"vending-server/internal/domain/vending"
)

// DefaultCapacity bounds the undelivered events kept per character.
const DefaultCapacity = 64

// Mailbox buffers events per character until they are drained. When a
// box is full the oldest event is dropped.
type Mailbox struct {
	mu       sync.Mutex
	capacity int
	boxes    map[int32][]vending.Event
}

func NewMailbox(capacity int) *Mailbox {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Mailbox{capacity: capacity, boxes: make(map[int32][]vending.Event)}
}

func (m *Mailbox) Notify(charID int32, ev vending.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	box := m.boxes[charID]
	if len(box) >= m.capacity {
		box = box[1:]
	}
	m.boxes[charID] = append(box, ev)
}

func (m *Mailbox) Drain(charID int32) []vending.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	box := m.boxes[charID]
	delete(m.boxes, charID)
	return box
}
