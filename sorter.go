package extsort

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/davidvella/extsort/budget"
	"github.com/davidvella/extsort/buffer"
	"github.com/davidvella/extsort/merge"
	"github.com/davidvella/extsort/spill"
)

const inputBufSize = 64 * 1024

var (
	// ErrInvalidFanIn is returned when the configured fan-in limit is
	// below 2.
	ErrInvalidFanIn = errors.New("extsort: fan-in limit must be at least 2")

	// ErrInvalidTempDir is returned when the configured temporary
	// directory does not exist or is not a directory.
	ErrInvalidTempDir = errors.New("extsort: invalid temporary directory")
)

// Sorter sorts streams of recordio-framed records that do not fit in
// memory, spilling sorted runs to temporary partition files and merging
// them back into a single output.
//
// A Sorter owns one reusable in-memory buffer and is not safe for
// concurrent Sort calls. Separate Sorter instances are fully independent
// and may run concurrently.
type Sorter struct {
	budgetBytes int64
	fanIn       int
	cmp         Comparator
	tempDir     string
	buf         *buffer.Buffer
}

// New creates a sorter. Configuration errors (buffer below minimum,
// fan-in below 2, invalid temp directory) are rejected here, before any
// input is consumed. When no fixed buffer size is given the budget is
// derived from currently available memory.
func New(opts ...Option) (*Sorter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.fanIn < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFanIn, o.fanIn)
	}
	if o.cmp == nil {
		return nil, errors.New("extsort: comparator is required")
	}

	info, err := os.Stat(o.tempDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTempDir, o.tempDir)
	}

	var budgetBytes int64
	if o.bufferBytes > 0 {
		budgetBytes, err = budget.Fixed(o.bufferBytes)
	} else {
		budgetBytes, err = budget.Automatic(budget.SystemProber())
	}
	if err != nil {
		return nil, err
	}

	return &Sorter{
		budgetBytes: budgetBytes,
		fanIn:       o.fanIn,
		cmp:         o.cmp,
		tempDir:     o.tempDir,
		buf:         buffer.New(),
	}, nil
}

// Sort consumes the entire input stream of recordio-framed records and
// writes them, sorted, to outputPath in the same format. Any
// pre-existing file at outputPath is deleted first.
//
// On failure every temporary partition file and any partially written
// output are deleted before the error is returned, so callers never
// observe a truncated result as if it were complete.
func (s *Sorter) Sort(input io.Reader, outputPath string) (Stats, error) {
	var stats Stats
	start := time.Now()

	if err := os.Remove(outputPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return stats, fmt.Errorf("extsort: failed to remove existing output: %w", err)
	}

	var live []string
	err := s.run(bufio.NewReaderSize(input, inputBufSize), outputPath, &stats, &live)

	for _, p := range live {
		_ = os.Remove(p)
	}
	if err != nil {
		_ = os.Remove(outputPath)
		return stats, err
	}

	stats.TotalDuration = time.Since(start)
	return stats, nil
}

// run drives the partitioning and merging phases. Every partition file
// it creates is appended to live before any record is written to it, so
// the caller can always clean up, whatever the exit path.
func (s *Sorter) run(input io.Reader, outputPath string, stats *Stats, live *[]string) error {
	s.buf.Reset()

	for {
		readStart := time.Now()
		n, err := fillPartition(input, s.buf, s.budgetBytes)
		stats.ReadDuration += time.Since(readStart)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		stats.Records += int64(n)

		sortStart := time.Now()
		s.buf.Sort(s.cmp)
		stats.SortDuration += time.Since(sortStart)

		if err := s.spill(live); err != nil {
			return err
		}
		stats.TempFiles++

		// Keep the number of simultaneously open partitions during
		// the final merge within the fan-in limit.
		if len(*live) >= s.fanIn {
			if err := s.consolidate(live, stats); err != nil {
				return err
			}
		}
	}

	switch len(*live) {
	case 0:
		// An empty input still yields a valid, empty output file.
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("extsort: failed to create output: %w", err)
		}
		return f.Close()
	case 1:
		path := (*live)[0]
		if err := moveFile(path, outputPath); err != nil {
			return err
		}
		*live = (*live)[:0]
		return nil
	default:
		mergeStart := time.Now()
		err := merge.Files(outputPath, s.cmp, *live)
		stats.MergeDuration += time.Since(mergeStart)
		if err != nil {
			return err
		}
		stats.MergeRounds++
		return nil
	}
}

// spill writes the sorted buffer to a new partition file and resets the
// buffer for the next partition.
func (s *Sorter) spill(live *[]string) error {
	w, err := spill.Create(s.tempDir)
	if err != nil {
		return err
	}
	*live = append(*live, w.Path())

	for rec := range s.buf.All() {
		if err := w.Write(rec); err != nil {
			_ = w.Close()
			return err
		}
	}
	s.buf.Reset()

	return w.Close()
}

// consolidate merges every live partition into one new partition file
// and deletes the merged-away originals.
func (s *Sorter) consolidate(live *[]string, stats *Stats) error {
	f, err := os.CreateTemp(s.tempDir, "extsort-*.part")
	if err != nil {
		return fmt.Errorf("extsort: failed to create merge output: %w", err)
	}
	dst := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("extsort: failed to create merge output: %w", err)
	}

	mergeStart := time.Now()
	err = merge.Files(dst, s.cmp, *live)
	stats.MergeDuration += time.Since(mergeStart)
	if err != nil {
		_ = os.Remove(dst)
		return err
	}

	for _, p := range *live {
		_ = os.Remove(p)
	}
	*live = append((*live)[:0], dst)
	stats.MergeRounds++
	stats.TempFiles++
	return nil
}

// moveFile renames src to dst, falling back to a copy-and-delete when
// the two paths are on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("extsort: failed to open partition: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("extsort: failed to create output: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("extsort: failed to copy partition: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("extsort: failed to close output: %w", err)
	}

	return os.Remove(src)
}
