package bus

// Hub fans an event out to its subscribers synchronously, in subscription order.
// It is not safe for concurrent use; the host delivers every event on one thread.
type Hub[T any] struct {
	lastID int
	subs   []sub[T]
}

type sub[T any] struct {
	id int
	fn func(T)
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{}
}

// Subscribe registers fn and returns its unsubscribe func. Calling the
// returned func more than once is a no-op.
func (h *Hub[T]) Subscribe(fn func(T)) func() {
	h.lastID++
	id := h.lastID
	h.subs = append(h.subs, sub[T]{id: id, fn: fn})

	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every subscriber registered when Publish starts that is still
// registered when its turn comes.
func (h *Hub[T]) Publish(event T) {
	snapshot := h.subs
	for _, s := range snapshot {
		if !h.has(s.id) {
			continue
		}
		s.fn(event)
	}
}

func (h *Hub[T]) Len() int {
	return len(h.subs)
}

func (h *Hub[T]) has(id int) bool {
	for _, s := range h.subs {
		if s.id == id {
			return true
		}
	}
	return false
}
