// Package priority implements a generic binary min-heap ordered by a
// user-provided comparison function. It exists to drive k-way merges,
// where the common operation is replacing the current minimum with the
// next element from the same source.
//
// Key features:
//   - Generic implementation supporting any value type
//   - O(log n) insertion and deletion
//   - O(1) peek operations
//   - ReplaceTop performs a replace-then-sift-down in a single pass,
//     avoiding the Pop/Push pair a merge loop would otherwise need
//
// Basic usage:
//
//	// Create a min-heap priority queue
//	pq := priority.NewQueue[int](func(a, b int) bool {
//	    return a < b
//	})
//
//	// Add items
//	pq.Push(5)
//	pq.Push(3)
//	pq.Push(7)
//
//	// Get highest priority item
//	value, exists := pq.Peek()
//	if exists {
//	    fmt.Printf("Highest priority: %d\n", value)
//	}
//
//	// Replace the minimum and restore heap order
//	pq.ReplaceTop(6)
//
//	// Remove and return highest priority item
//	value, exists = pq.Pop()
//
// The less function should return true if a has higher priority than b.
package priority
