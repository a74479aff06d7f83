package spill_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidvella/extsort/recordio"
	"github.com/davidvella/extsort/spill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	records := [][]byte{
		[]byte("apple"),
		[]byte("banana"),
		{},
		{0xFF, 0x00, 0x80},
	}

	w, err := spill.Create(dir)
	require.NoError(t, err)

	path := w.Path()
	assert.Equal(t, dir, filepath.Dir(path))

	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())

	r, err := spill.Open(path)
	require.NoError(t, err)
	defer r.Close()

	var got [][]byte
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, rec)
	}

	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i], got[i])
	}
}

func TestCreateInvalidDir(t *testing.T) {
	_, err := spill.Create(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := spill.Open(filepath.Join(t.TempDir(), "missing.part"))
	assert.Error(t, err)
}

func TestNextTruncatedPartition(t *testing.T) {
	dir := t.TempDir()

	w, err := spill.Create(dir)
	require.NoError(t, err)
	require.NoError(t, w.Write([]byte("complete record")))
	require.NoError(t, w.Close())

	// Chop the tail off the file so the last record is cut mid-payload.
	info, err := os.Stat(w.Path())
	require.NoError(t, err)
	require.NoError(t, os.Truncate(w.Path(), info.Size()-4))

	r, err := spill.Open(w.Path())
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	assert.ErrorIs(t, err, recordio.ErrTruncated)
}

func TestWriterRejectsOversizedRecord(t *testing.T) {
	w, err := spill.Create(t.TempDir())
	require.NoError(t, err)
	defer w.Close()

	err = w.Write(make([]byte, recordio.MaxRecordSize+1))
	assert.ErrorIs(t, err, recordio.ErrTooLarge)
}

func TestReaderClose(t *testing.T) {
	dir := t.TempDir()

	w, err := spill.Create(dir)
	require.NoError(t, err)
	require.NoError(t, w.Write([]byte("x")))
	require.NoError(t, w.Close())

	r, err := spill.Open(w.Path())
	require.NoError(t, err)
	assert.NoError(t, r.Close())
}
