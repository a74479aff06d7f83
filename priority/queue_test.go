package priority_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/davidvella/extsort/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMinQueue() *priority.Queue[int] {
	return priority.NewQueue[int](func(a, b int) bool {
		return a < b
	})
}

func TestQueueEmpty(t *testing.T) {
	pq := newMinQueue()

	assert.Equal(t, 0, pq.Len())

	_, exists := pq.Peek()
	assert.False(t, exists)

	_, exists = pq.Pop()
	assert.False(t, exists)
}

func TestQueueOrdering(t *testing.T) {
	pq := newMinQueue()
	for _, v := range []int{5, 3, 7, 1, 4, 1} {
		pq.Push(v)
	}

	require.Equal(t, 6, pq.Len())

	top, exists := pq.Peek()
	require.True(t, exists)
	assert.Equal(t, 1, top)

	var got []int
	for pq.Len() > 0 {
		v, exists := pq.Pop()
		require.True(t, exists)
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 1, 3, 4, 5, 7}, got)
}

func TestQueueReplaceTop(t *testing.T) {
	pq := newMinQueue()
	pq.Push(2)
	pq.Push(5)
	pq.Push(8)

	// Replacing the minimum with a larger value sifts it down.
	pq.ReplaceTop(9)

	top, exists := pq.Peek()
	require.True(t, exists)
	assert.Equal(t, 5, top)
	assert.Equal(t, 3, pq.Len())

	var got []int
	for pq.Len() > 0 {
		v, _ := pq.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 8, 9}, got)
}

func TestQueueReplaceTopKeepsMinimum(t *testing.T) {
	pq := newMinQueue()
	pq.Push(4)
	pq.Push(6)

	// Replacing with a value that is still the minimum keeps it on top.
	pq.ReplaceTop(1)

	top, _ := pq.Peek()
	assert.Equal(t, 1, top)
}

func TestQueueRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pq := newMinQueue()

	values := make([]int, 1000)
	for i := range values {
		values[i] = rng.Intn(100)
		pq.Push(values[i])
	}
	sort.Ints(values)

	var got []int
	for pq.Len() > 0 {
		v, _ := pq.Pop()
		got = append(got, v)
	}

	assert.Equal(t, values, got)
}

func TestQueueMaxHeap(t *testing.T) {
	pq := priority.NewQueue[int](func(a, b int) bool {
		return a > b
	})
	for _, v := range []int{10, 20, 15} {
		pq.Push(v)
	}

	var got []int
	for pq.Len() > 0 {
		v, _ := pq.Pop()
		got = append(got, v)
	}

	assert.Equal(t, []int{20, 15, 10}, got)
}
