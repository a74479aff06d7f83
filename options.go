package extsort

import "os"

// DefaultFanIn is the maximum number of partition files merged in a
// single pass before an intermediate consolidation is forced.
const DefaultFanIn = 128

// options defines all configuration options for the sorter.
type options struct {
	bufferBytes int64      // fixed buffer budget; 0 selects the automatic policy
	fanIn       int        // maximum partitions merged per pass
	cmp         Comparator // total order over records
	tempDir     string     // directory for partition files
}

// Option is a function that configures the sorter options.
type Option func(*options)

// WithBufferSize fixes the in-memory buffer budget in bytes. Values
// below budget.MinBufferBytes are rejected by New. When not set, the
// budget is derived automatically from available memory.
func WithBufferSize(n int64) Option {
	return func(o *options) {
		o.bufferBytes = n
	}
}

// WithFanIn sets the maximum number of partition files merged in a
// single pass. Must be at least 2.
func WithFanIn(n int) Option {
	return func(o *options) {
		o.fanIn = n
	}
}

// WithComparator sets the record ordering.
func WithComparator(cmp Comparator) Option {
	return func(o *options) {
		o.cmp = cmp
	}
}

// WithTempDir sets the directory partition files are created in.
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		bufferBytes: 0,
		fanIn:       DefaultFanIn,
		cmp:         DefaultComparator(),
		tempDir:     os.TempDir(),
	}
}
