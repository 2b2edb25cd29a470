package events

import (
	"encoding/json"
	"testing"
)

func TestHubFanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Publish("one")
	if got := <-a; got != "one" {
		t.Errorf("a got %q", got)
	}
	if got := <-b; got != "one" {
		t.Errorf("b got %q", got)
	}

	h.Unsubscribe(b)
	h.Publish("two")
	if got := <-a; got != "two" {
		t.Errorf("a got %q", got)
	}
	if _, open := <-b; open {
		t.Error("unsubscribed channel should be closed")
	}
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	for i := 0; i < 20; i++ {
		h.Publish("evt") // must not block past the channel's buffer
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered %d, want full buffer %d", len(ch), cap(ch))
	}
}

func TestMakeEvent(t *testing.T) {
	s := MakeEvent("req-1", TypePinAdded, 1, map[string]int64{"listing_id": 7})

	var e Event
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		t.Fatalf("event not valid JSON: %v", err)
	}
	if e.Type != TypePinAdded || e.Version != 1 || e.RequestID != "req-1" {
		t.Errorf("event = %+v", e)
	}
	var data map[string]int64
	if err := json.Unmarshal(e.Data, &data); err != nil || data["listing_id"] != 7 {
		t.Errorf("data = %s", e.Data)
	}
}
