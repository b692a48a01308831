package event

import (
	"testing"
)

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestRouterDispatchByType(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	hostObs := &recordingHandler{types: []EventType{EventHostShakeStart, EventHostDeath}}
	gripObs := &recordingHandler{types: []EventType{EventGripStart, EventGripEnd}}
	r.Register(hostObs)
	r.Register(gripObs)

	q.Push(GameEvent{Type: EventGripStart})
	q.Push(GameEvent{Type: EventHostShakeStart})
	q.Push(GameEvent{Type: EventStaminaChanged}) // no handler
	q.Push(GameEvent{Type: EventGripEnd})

	if n := r.DispatchAll(); n != 4 {
		t.Errorf("DispatchAll consumed %d, want 4", n)
	}

	if len(hostObs.seen) != 1 || hostObs.seen[0] != EventHostShakeStart {
		t.Errorf("host observer saw %v", hostObs.seen)
	}
	if len(gripObs.seen) != 2 || gripObs.seen[0] != EventGripStart || gripObs.seen[1] != EventGripEnd {
		t.Errorf("grip observer saw %v", gripObs.seen)
	}
	if r.HasHandlers(EventStaminaChanged) {
		t.Error("unexpected handler for StaminaChanged")
	}
}

func TestRouterHandlerFunc(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	count := 0
	r.Register(HandlerFunc{Types: AllTypes(), Fn: func(GameEvent) { count++ }})
	r.Register(HandlerFunc{Types: []EventType{EventHostDeath}}) // nil Fn is tolerated

	q.Push(GameEvent{Type: EventHostDeath})
	q.Push(GameEvent{Type: EventAttackResolved})
	r.DispatchAll()

	if count != 2 {
		t.Errorf("catch-all handler called %d times, want 2", count)
	}
	if r.HandlerCount(EventHostDeath) != 2 {
		t.Errorf("HandlerCount = %d, want 2", r.HandlerCount(EventHostDeath))
	}
}
