package extsort

import (
	"errors"
	"io"

	"github.com/davidvella/extsort/buffer"
	"github.com/davidvella/extsort/recordio"
)

// fillPartition decodes records from r into buf until the buffer's byte
// usage reaches budgetBytes or the input is cleanly exhausted. It
// returns the number of records ingested; zero means the input has no
// further records and no more partitions are needed.
//
// The budget is a trigger, not a ceiling: the record that pushes usage
// over the budget is still admitted, so a first record larger than the
// whole budget forms a single-record partition rather than stalling.
func fillPartition(r io.Reader, buf *buffer.Buffer, budgetBytes int64) (int, error) {
	n := 0
	for buf.ByteSize() < budgetBytes {
		rec, err := recordio.Read(r)
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		buf.Append(rec)
		n++
	}
	return n, nil
}
