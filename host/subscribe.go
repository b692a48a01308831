package host

import (
	"github.com/lixenwraith/colossus/event"
)

// SubscriptionID identifies a direct host subscription
type SubscriptionID uint64

// Listener receives host events synchronously during Host.Update or TakeDamage
type Listener func(ev event.GameEvent)

type subscription struct {
	id      SubscriptionID
	fn      Listener
	removed bool
}

// Subscribe registers a listener for this host's events and returns its handle
// A nil listener is rejected with a zero ID
func (h *Host) Subscribe(fn Listener) SubscriptionID {
	if fn == nil {
		return 0
	}
	h.nextSubID++
	h.subs = append(h.subs, &subscription{id: h.nextSubID, fn: fn})
	return h.nextSubID
}

// Unsubscribe removes a listener; returns false for unknown or already removed IDs
// Safe to call from inside a listener: the in-flight delivery skips removed entries
func (h *Host) Unsubscribe(id SubscriptionID) bool {
	for i, s := range h.subs {
		if s.id != id || s.removed {
			continue
		}
		s.removed = true
		h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
		return true
	}
	return false
}

// SubscriberCount returns the number of live subscriptions
func (h *Host) SubscriberCount() int {
	return len(h.subs)
}

// notify delivers to a snapshot so listeners may unsubscribe during delivery
func (h *Host) notify(ev event.GameEvent) {
	if len(h.subs) == 0 {
		return
	}
	snapshot := make([]*subscription, len(h.subs))
	copy(snapshot, h.subs)
	for _, s := range snapshot {
		if s.removed {
			continue
		}
		s.fn(ev)
	}
}
