package sim

import "container/heap"

// EventHeap implements a priority queue over pending events with
// deterministic ordering: due time first, then scheduling sequence, so two
// events due at the same instant fire in the order they were scheduled.
type EventHeap struct {
	items []eventItem
}

type eventItem struct {
	ev  Event
	seq uint64
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{items: make([]eventItem, 0)}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventHeap) Len() int {
	return len(h.items)
}

// Less implements heap.Interface with (timestamp, sequence) ordering.
func (h *EventHeap) Less(i, j int) bool {
	ti, tj := h.items[i].ev.Timestamp(), h.items[j].ev.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return h.items[i].seq < h.items[j].seq
}

// Swap implements heap.Interface.
func (h *EventHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push implements heap.Interface.
func (h *EventHeap) Push(x any) {
	h.items = append(h.items, x.(eventItem))
}

// Pop implements heap.Interface.
func (h *EventHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[0 : n-1]
	return item
}

// Schedule adds an event with its scheduling sequence number.
func (h *EventHeap) Schedule(e Event, seq uint64) {
	heap.Push(h, eventItem{ev: e, seq: seq})
}

// PopNext removes and returns the earliest pending event, or nil when empty.
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(eventItem).ev
}

// Peek returns the earliest pending event without removing it.
func (h *EventHeap) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.items[0].ev
}
