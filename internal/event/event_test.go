package event

import "testing"

func TestDispatcher_DeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(CuePop, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(CuePop, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: CuePop})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected [first second], got %v", order)
	}
}

func TestDispatcher_IgnoresUnsubscribedTypes(t *testing.T) {
	d := NewDispatcher()
	rec := NewRecorder()
	d.Subscribe(CueFire, rec)

	d.Dispatch(Event{Type: CuePop})
	if len(rec.Events) != 0 {
		t.Errorf("Expected no events, got %v", rec.Types())
	}
}

func TestDispatcher_SubscribeAll(t *testing.T) {
	d := NewDispatcher()
	rec := NewRecorder()
	d.SubscribeAll([]EventType{CuePop, CueFire}, rec)

	d.Dispatch(Event{Type: CuePop})
	d.Dispatch(Event{Type: CueFire})
	d.Dispatch(Event{Type: CueExplode})

	if rec.Count(CuePop) != 1 || rec.Count(CueFire) != 1 {
		t.Errorf("Expected one pop and one fire, got %v", rec.Types())
	}
	if rec.Count(CueExplode) != 0 {
		t.Error("Expected explode not to be delivered")
	}
}

func TestRecorder_Reset(t *testing.T) {
	rec := NewRecorder()
	rec.OnEvent(Event{Type: CuePop})
	rec.OnEvent(Event{Type: CuePop, Data: 2})
	if rec.Count(CuePop) != 2 {
		t.Fatalf("Expected 2 pops, got %d", rec.Count(CuePop))
	}
	rec.Reset()
	if len(rec.Events) != 0 {
		t.Errorf("Expected empty recorder after Reset, got %d", len(rec.Events))
	}
}
