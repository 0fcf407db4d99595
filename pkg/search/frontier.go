package search

// Frontier is an ordering discipline for discovered-but-unsettled work.
// [Queue] is first-in first-out and [Stack] is last-in first-out.
type Frontier[T any] interface {
	// Push adds v to the frontier.
	Push(v T)
	// Pop removes and returns the next element. ok is false when empty.
	Pop() (v T, ok bool)
	// Len returns the number of pending elements.
	Len() int
}

// Queue is a FIFO frontier backed by a slice with a moving head.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// Push appends v to the back.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Stack is a LIFO frontier. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return len(s.items) }

var (
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*Stack[int])(nil)
)
