package recordio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxRecordSize is the largest payload a single record may carry. The
// on-disk length field is an unsigned 16-bit integer, so longer records
// cannot be represented in the format.
const MaxRecordSize = 1<<16 - 1

// LengthSize is the size in bytes of the record length prefix.
var LengthSize = int64(binary.Size(uint16(0)))

var (
	// ErrTooLarge is returned when a record exceeds MaxRecordSize.
	// It signals a caller contract violation, not an I/O condition.
	ErrTooLarge = errors.New("recordio: record exceeds maximum encodable size")

	// ErrTruncated is returned when a stream ends part-way through a
	// record. It is distinct from io.EOF, which Read returns only at a
	// clean record boundary.
	ErrTruncated = errors.New("recordio: truncated record")
)

// Write writes a single record to the writer as a big-endian uint16
// length prefix followed by the payload. It returns the number of bytes
// written. Records longer than MaxRecordSize are rejected before any
// byte is written.
func Write(w io.Writer, rec []byte) (int64, error) {
	if len(rec) > MaxRecordSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(rec))
	}

	var prefix [2]byte
	binary.BigEndian.PutUint16(prefix[:], uint16(len(rec)))

	n, err := w.Write(prefix[:])
	if err != nil {
		return int64(n), fmt.Errorf("recordio: error writing record length: %w", err)
	}

	m, err := w.Write(rec)
	if err != nil {
		return LengthSize + int64(m), fmt.Errorf("recordio: error writing record payload: %w", err)
	}

	return LengthSize + int64(m), nil
}

// Read reads a single record from the reader. At a clean record boundary
// with no further data it returns (nil, io.EOF). A stream that ends
// inside the length prefix or inside the payload is corrupt and yields
// an error wrapping ErrTruncated.
func Read(r io.Reader) ([]byte, error) {
	var prefix [2]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) {
			// No bytes at all: a clean end of the record stream.
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: error reading record length: %v", ErrTruncated, err)
	}

	length := binary.BigEndian.Uint16(prefix[:])
	rec := make([]byte, length)
	if _, err := io.ReadFull(r, rec); err != nil {
		return nil, fmt.Errorf("%w: error reading record payload: %v", ErrTruncated, err)
	}

	return rec, nil
}

// Size calculates the total size in bytes that a record will occupy when
// written, including the length prefix.
func Size(rec []byte) int64 {
	return LengthSize + int64(len(rec))
}
