// Package extsort implements an out-of-core sorter for variable-length
// binary records. It consumes an unordered stream of length-prefixed
// records, sorts bounded in-memory runs, spills them to temporary
// partition files, and merges the partitions back into a single sorted
// output with a k-way merge.
//
// Basic usage:
//
//	sorter, err := extsort.New(
//	    extsort.WithBufferSize(64<<20),
//	    extsort.WithTempDir("/var/tmp"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := sorter.Sort(input, "sorted.out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("sorted %d records in %s\n", stats.Records, stats.TotalDuration)
//
// Input and output use the recordio framing: a big-endian uint16 length
// prefix followed by the payload, with no file header or footer. Records
// are opaque byte sequences up to 65535 bytes; ordering defaults to
// unsigned byte-lexicographic comparison and can be replaced with
// WithComparator.
//
// Sorting is single-threaded and I/O-bound by design. A Sorter instance
// must not be used for concurrent Sort calls; independent instances may
// run concurrently provided they use distinct temporary directories or
// rely on unique temp-file names.
package extsort
