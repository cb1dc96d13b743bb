package events

import (
	"encoding/json"
	"testing"
)

func TestMakeEventEnvelope(t *testing.T) {
	s := MakeEvent("rid-1", TypeJobCreated, 1, map[string]any{"id": "j1"})

	var e Event
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	if e.Type != TypeJobCreated || e.Version != 1 || e.RequestID != "rid-1" {
		t.Errorf("envelope = %+v", e)
	}
	if e.At.IsZero() {
		t.Error("timestamp not set")
	}

	var data map[string]string
	if err := json.Unmarshal(e.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data["id"] != "j1" {
		t.Errorf("data = %v", data)
	}
}

func TestMakeEventNilData(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(MakeEvent("", TypePing, 1, nil)), &e); err != nil {
		t.Fatal(err)
	}
	if e.Data != nil {
		t.Errorf("data = %s, want omitted", e.Data)
	}
}

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
	if _, ok := <-b; ok {
		t.Error("unsubscribed channel still open")
	}
}

// A subscriber that never drains must not block Publish.
func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	slow := h.Subscribe()

	for i := 0; i < 50; i++ {
		h.Publish("evt")
	}
	if n := len(slow); n > cap(slow) {
		t.Errorf("buffered = %d", n)
	}
}
