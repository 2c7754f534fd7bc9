package fringe

import "container/heap"

// store is the ordered backing structure behind a Fringe. It holds every
// pushed node, tombstoned ones included, until pop hands them back.
type store[S comparable] interface {
	push(n *Node[S])
	pop() (*Node[S], bool)
	len() int
	reset()
}

// newStore picks the backing structure for p. less is only used by Priority.
func newStore[S comparable](p Policy, less func(a, b *Node[S]) bool, capacity int) store[S] {
	switch p {
	case LIFO:
		return &stackStore[S]{items: make([]*Node[S], 0, capacity)}
	case Priority:
		return &heapStore[S]{less: less, items: make([]heapItem[S], 0, capacity)}
	default:
		return &queueStore[S]{items: make([]*Node[S], 0, capacity)}
	}
}

// queueStore is a slice-backed FIFO. head advances on pop and the slice is
// compacted once the consumed prefix dominates.
type queueStore[S comparable] struct {
	items []*Node[S]
	head  int
}

func (q *queueStore[S]) push(n *Node[S]) { q.items = append(q.items, n) }

func (q *queueStore[S]) pop() (*Node[S], bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	} else if q.head > 32 && q.head*2 >= len(q.items) {
		oldLen := len(q.items)
		q.items = append(q.items[:0], q.items[q.head:]...)
		clear(q.items[len(q.items):oldLen])
		q.head = 0
	}

	return n, true
}

func (q *queueStore[S]) len() int { return len(q.items) - q.head }

func (q *queueStore[S]) reset() {
	clear(q.items)
	q.items, q.head = q.items[:0], 0
}

// stackStore is a slice-backed LIFO.
type stackStore[S comparable] struct {
	items []*Node[S]
}

func (s *stackStore[S]) push(n *Node[S]) { s.items = append(s.items, n) }

func (s *stackStore[S]) pop() (*Node[S], bool) {
	last := len(s.items) - 1
	if last < 0 {
		return nil, false
	}
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]

	return n, true
}

func (s *stackStore[S]) len() int { return len(s.items) }

func (s *stackStore[S]) reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// heapItem pairs a node with its push sequence so equal keys pop in
// insertion order.
type heapItem[S comparable] struct {
	node *Node[S]
	seq  uint64
}

// heapStore is a binary min-heap ordered by less, then by seq.
// Superseded entries stay in the heap until popped (lazy decrease-key).
type heapStore[S comparable] struct {
	less  func(a, b *Node[S]) bool
	items []heapItem[S]
	seq   uint64
}

func (h *heapStore[S]) Len() int { return len(h.items) }

func (h *heapStore[S]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.node, b.node) {
		return true
	}
	if h.less(b.node, a.node) {
		return false
	}

	return a.seq < b.seq
}

func (h *heapStore[S]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push is called by heap.Push; x must be a heapItem[S].
func (h *heapStore[S]) Push(x any) { h.items = append(h.items, x.(heapItem[S])) }

// Pop is called by heap.Pop and returns the last element as a heapItem[S].
func (h *heapStore[S]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = heapItem[S]{}
	h.items = old[:n-1]

	return item
}

func (h *heapStore[S]) push(n *Node[S]) {
	heap.Push(h, heapItem[S]{node: n, seq: h.seq})
	h.seq++
}

func (h *heapStore[S]) pop() (*Node[S], bool) {
	if len(h.items) == 0 {
		return nil, false
	}

	return heap.Pop(h).(heapItem[S]).node, true
}

func (h *heapStore[S]) len() int { return len(h.items) }

func (h *heapStore[S]) reset() {
	clear(h.items)
	h.items = h.items[:0]
	h.seq = 0
}
