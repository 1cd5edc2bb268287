// Package eventbus provides the in-process publish/subscribe bus connecting
// the assignment engine to its observers.
package eventbus

import "sync"

// Event is an arbitrary value published on the bus.
type Event any

// EventBus decouples publishers from subscribers. Delivery is best-effort:
// a slow subscriber drops events instead of blocking the publisher.
type EventBus interface {
	Publish(Event)
	Subscribe() <-chan Event
	Unsubscribe(<-chan Event)
	Close()
}

// Bus is the default EventBus implementation.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Event
	ids    map[<-chan Event]int
	closed bool
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]chan Event), ids: make(map[<-chan Event]int)}
}

// Publish sends the event to every subscriber without blocking.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel. The buffer
// is sized to hold every event of a typical planning run so a subscriber can
// drain after the fact.
func (b *Bus) Subscribe() <-chan Event {
	ch := make(chan Event, 1024)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.ids[ch] = id
	return ch
}

// Unsubscribe removes the subscriber and closes its channel. Unsubscribing
// an unknown or already closed channel is a no-op.
func (b *Bus) Unsubscribe(sub <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.ids[sub]
	if !ok {
		return
	}
	delete(b.ids, sub)
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		if !b.closed {
			close(ch)
		}
	}
}

// Close closes every subscriber channel and rejects further publishes.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
	b.ids = make(map[<-chan Event]int)
}
