package extsort

import "bytes"

// Comparator defines a total order over records. It returns a negative
// number when a orders before b, zero when they are equal, and a
// positive number when a orders after b.
type Comparator func(a, b []byte) int

// DefaultComparator orders records by unsigned byte-lexicographic
// comparison. Payload bytes >= 0x80 sort after ASCII bytes, matching
// binary and codepoint order rather than signed-byte order.
func DefaultComparator() Comparator {
	return bytes.Compare
}
