package priority

// Queue implements a binary min-heap ordered by a caller-supplied
// comparison function.
type Queue[V any] struct {
	items []V
	lessF func(a, b V) bool // returns true if a has higher priority than b
}

// NewQueue creates a new priority queue with the given comparator.
func NewQueue[V any](less func(a, b V) bool) *Queue[V] {
	return &Queue[V]{
		items: make([]V, 0),
		lessF: less,
	}
}

// Len returns the number of items in the queue.
func (pq *Queue[V]) Len() int {
	return len(pq.items)
}

// Push adds an item to the queue.
func (pq *Queue[V]) Push(value V) {
	pq.items = append(pq.items, value)
	pq.up(len(pq.items) - 1)
}

// Peek returns the highest priority item without removing it.
func (pq *Queue[V]) Peek() (value V, exists bool) {
	if len(pq.items) == 0 {
		var zeroV V
		return zeroV, false
	}
	return pq.items[0], true
}

// Pop removes and returns the highest priority item.
func (pq *Queue[V]) Pop() (value V, exists bool) {
	if len(pq.items) == 0 {
		var zeroV V
		return zeroV, false
	}

	top := pq.items[0]
	lastIdx := len(pq.items) - 1
	pq.swap(0, lastIdx)
	var zeroV V
	pq.items[lastIdx] = zeroV
	pq.items = pq.items[:lastIdx]
	if lastIdx > 0 {
		pq.down(0)
	}
	return top, true
}

// ReplaceTop replaces the highest priority item and restores heap order
// by sifting the new value down. It is equivalent to a Pop followed by a
// Push but performs a single sift.
func (pq *Queue[V]) ReplaceTop(value V) {
	pq.items[0] = value
	pq.down(0)
}

// swap swaps items at index i and j.
func (pq *Queue[V]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// less compares items at index i and j.
func (pq *Queue[V]) less(i, j int) bool {
	return pq.lessF(pq.items[i], pq.items[j])
}

// up moves the element at index i up to its proper position.
func (pq *Queue[V]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (pq *Queue[V]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(pq.items) && pq.less(left, smallest) {
			smallest = left
		}
		if right < len(pq.items) && pq.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			break
		}

		pq.swap(i, smallest)
		i = smallest
	}
}
