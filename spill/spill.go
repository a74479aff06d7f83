// Package spill persists sorted in-memory runs as temporary partition
// files and reads them back sequentially. A partition file is a plain
// sequence of recordio-framed records: write-once, read-once, then
// deleted by whoever created it.
package spill

import (
	"bufio"
	"fmt"
	"os"

	"github.com/davidvella/extsort/recordio"
)

const defaultBufSize = 64 * 1024

// Writer streams records to a temporary partition file.
type Writer struct {
	f   *os.File
	buf *bufio.Writer
}

// Create creates a new temporary partition file in dir.
func Create(dir string) (*Writer, error) {
	f, err := os.CreateTemp(dir, "extsort-*.part")
	if err != nil {
		return nil, fmt.Errorf("spill: failed to create partition file: %w", err)
	}
	return &Writer{
		f:   f,
		buf: bufio.NewWriterSize(f, defaultBufSize),
	}, nil
}

// Write appends one record to the partition.
func (w *Writer) Write(rec []byte) error {
	_, err := recordio.Write(w.buf, rec)
	return err
}

// Path returns the location of the partition file.
func (w *Writer) Path() string {
	return w.f.Name()
}

// Close flushes buffered records and closes the file. The file itself is
// left in place; deleting it is the caller's responsibility.
func (w *Writer) Close() error {
	flushErr := w.buf.Flush()
	closeErr := w.f.Close()
	if flushErr != nil {
		return fmt.Errorf("spill: failed to flush partition file: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("spill: failed to close partition file: %w", closeErr)
	}
	return nil
}

// Reader reads a partition file back sequentially.
type Reader struct {
	f   *os.File
	buf *bufio.Reader
}

// Open opens a partition file for sequential reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spill: failed to open partition file: %w", err)
	}
	return &Reader{
		f:   f,
		buf: bufio.NewReaderSize(f, defaultBufSize),
	}, nil
}

// Next returns the next record, or io.EOF once the partition is
// exhausted. A partition that ends mid-record surfaces
// recordio.ErrTruncated.
func (r *Reader) Next() ([]byte, error) {
	return recordio.Read(r.buf)
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
