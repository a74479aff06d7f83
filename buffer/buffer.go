// Package buffer provides the reusable in-memory run a sorter fills,
// sorts, and drains once per partition. The buffer keeps a running
// byte-usage counter so budget policies can decide when a run is full.
package buffer

import (
	"iter"
	"slices"
)

// recordOverhead approximates the in-memory bookkeeping cost of holding
// one record ([]byte header plus allocator slack). Counting it keeps the
// byte-usage figure conservative relative to real heap use.
const recordOverhead = 32

// Buffer is an ordered, mutable, resettable collection of records. It is
// created once per sorter and reused across partitions; Reset truncates
// the collection without releasing the backing array.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	records  [][]byte
	byteSize int64
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		records: make([][]byte, 0, 1024),
	}
}

// Append adds a record and charges its storage cost against the running
// byte-usage counter.
func (b *Buffer) Append(rec []byte) {
	b.records = append(b.records, rec)
	b.byteSize += Cost(rec)
}

// Len returns the number of buffered records.
func (b *Buffer) Len() int {
	return len(b.records)
}

// ByteSize returns the accumulated storage cost of all buffered records.
func (b *Buffer) ByteSize() int64 {
	return b.byteSize
}

// Sort orders the buffered records in place. The sort is not stable;
// the record format carries no key that would make stability observable.
func (b *Buffer) Sort(cmp func(a, b []byte) int) {
	slices.SortFunc(b.records, cmp)
}

// Reset clears the buffer for reuse, keeping the backing array so the
// next partition does not reallocate.
func (b *Buffer) Reset() {
	clear(b.records)
	b.records = b.records[:0]
	b.byteSize = 0
}

// All returns an iterator over the buffered records in their current
// order.
func (b *Buffer) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, rec := range b.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Cost is the storage cost charged for one record: payload length plus a
// fixed per-record bookkeeping overhead.
func Cost(rec []byte) int64 {
	return int64(len(rec)) + recordOverhead
}
