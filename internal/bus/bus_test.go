package bus

import "testing"

func TestPublishOrder(t *testing.T) {
	h := NewHub[int]()
	var got []string

	h.Subscribe(func(v int) { got = append(got, "a") })
	h.Subscribe(func(v int) { got = append(got, "b") })
	h.Publish(1)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected [a b], got %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	h := NewHub[int]()
	calls := 0

	unsub := h.Subscribe(func(v int) { calls += v })
	h.Publish(1)
	unsub()
	unsub()
	h.Publish(10)

	if calls != 1 {
		t.Errorf("Expected 1 delivery, got %d", calls)
	}
	if h.Len() != 0 {
		t.Errorf("Expected no subscribers, got %d", h.Len())
	}
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	h := NewHub[struct{}]()
	secondCalls := 0

	var unsubSecond func()
	h.Subscribe(func(struct{}) { unsubSecond() })
	unsubSecond = h.Subscribe(func(struct{}) { secondCalls++ })

	h.Publish(struct{}{})
	h.Publish(struct{}{})

	if secondCalls != 0 {
		t.Errorf("Expected removed subscriber to be skipped, got %d calls", secondCalls)
	}
}

func TestUnsubscribeKeepsOthers(t *testing.T) {
	h := NewHub[int]()
	var got []int

	h.Subscribe(func(v int) { got = append(got, 1) })
	unsub := h.Subscribe(func(v int) { got = append(got, 2) })
	h.Subscribe(func(v int) { got = append(got, 3) })
	unsub()
	h.Publish(0)

	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Expected [1 3], got %v", got)
	}
}
