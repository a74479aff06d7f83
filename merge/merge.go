package merge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davidvella/extsort/priority"
	"github.com/davidvella/extsort/recordio"
	"github.com/davidvella/extsort/spill"
)

const defaultBufSize = 64 * 1024

// Source yields records in sorted order. Next returns io.EOF once the
// source is exhausted.
type Source interface {
	Next() ([]byte, error)
}

// entry pairs a source with the record currently at its head.
type entry struct {
	head []byte
	src  Source
}

// Merge performs a k-way merge of the sorted sources, writing every
// record to w in the order defined by cmp. The relative order of records
// that compare equal across sources is implementation-defined.
func Merge(w io.Writer, cmp func(a, b []byte) int, sources []Source) error {
	pq := priority.NewQueue[entry](func(a, b entry) bool {
		return cmp(a.head, b.head) < 0
	})

	for _, src := range sources {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			continue
		}
		if err != nil {
			return fmt.Errorf("merge: failed to read first record: %w", err)
		}
		pq.Push(entry{head: rec, src: src})
	}

	for {
		e, ok := pq.Peek()
		if !ok {
			return nil
		}

		if _, err := recordio.Write(w, e.head); err != nil {
			return fmt.Errorf("merge: failed to write record: %w", err)
		}

		rec, err := e.src.Next()
		switch {
		case errors.Is(err, io.EOF):
			pq.Pop()
		case err != nil:
			return fmt.Errorf("merge: failed to read record: %w", err)
		default:
			pq.ReplaceTop(entry{head: rec, src: e.src})
		}
	}
}

// Files merges the sorted partition files at paths into a single sorted
// file at dst. It opens one reader per partition and releases every
// reader and the destination writer on all exit paths; when more than
// one close fails, the writer's error is reported ahead of reader
// errors, since a failed write more directly signals data loss. The
// input files are left in place.
func Files(dst string, cmp func(a, b []byte) int, paths []string) (err error) {
	readers := make([]*spill.Reader, 0, len(paths))
	defer func() {
		for _, r := range readers {
			if cerr := r.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		r, openErr := spill.Open(path)
		if openErr != nil {
			return fmt.Errorf("merge: %w", openErr)
		}
		readers = append(readers, r)
		sources = append(sources, r)
	}

	f, createErr := os.Create(dst)
	if createErr != nil {
		return fmt.Errorf("merge: failed to create output: %w", createErr)
	}

	buf := bufio.NewWriterSize(f, defaultBufSize)
	mergeErr := Merge(buf, cmp, sources)

	flushErr := buf.Flush()
	closeErr := f.Close()

	switch {
	case mergeErr != nil:
		return mergeErr
	case flushErr != nil:
		return fmt.Errorf("merge: failed to flush output: %w", flushErr)
	case closeErr != nil:
		return fmt.Errorf("merge: failed to close output: %w", closeErr)
	}
	return nil
}
