package extsort

import "time"

// Stats reports what a single Sort call did. It is telemetry only;
// no behaviour depends on it.
type Stats struct {
	// Records is the number of records read from the input and written
	// to the output.
	Records int64

	// TempFiles is the number of temporary partition files created,
	// including the outputs of intermediate merges.
	TempFiles int

	// MergeRounds is the number of merge passes performed, intermediate
	// and final alike. A sort that finishes with a single partition and
	// renames it into place records zero rounds.
	MergeRounds int

	// ReadDuration is the time spent decoding input records.
	ReadDuration time.Duration

	// SortDuration is the time spent sorting in-memory runs.
	SortDuration time.Duration

	// MergeDuration is the time spent in merge passes.
	MergeDuration time.Duration

	// TotalDuration is the wall-clock time of the whole Sort call.
	TotalDuration time.Duration
}
