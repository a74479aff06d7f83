// Package merge combines any number of sorted record sequences into a
// single sorted output. It drives a binary min-heap keyed by each
// sequence's current head record: the minimum head is popped, written,
// and replaced by the next record from the same sequence until every
// sequence is exhausted.
//
// The merge is streaming: memory use is proportional to the number of
// sequences, not to the number of records.
//
// Basic usage:
//
//	err := merge.Files("sorted.out", bytes.Compare, []string{
//	    "run-0.part",
//	    "run-1.part",
//	    "run-2.part",
//	})
//
// When two heads compare equal the order in which they are emitted is
// implementation-defined; callers that need a deterministic total order
// must make their comparator a total order over distinct records.
package merge
