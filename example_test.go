package extsort_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/davidvella/extsort"
	"github.com/davidvella/extsort/recordio"
)

// Example demonstrates sorting a small record stream end to end.
func Example() {
	// Frame some unsorted records.
	var input bytes.Buffer
	for _, rec := range []string{"banana", "apple", "cherry"} {
		if _, err := recordio.Write(&input, []byte(rec)); err != nil {
			log.Fatal(err)
		}
	}

	dir, err := os.MkdirTemp("", "extsort-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	sorter, err := extsort.New(
		extsort.WithBufferSize(1<<20),
		extsort.WithTempDir(dir),
	)
	if err != nil {
		log.Fatal(err)
	}

	output := filepath.Join(dir, "sorted.out")
	stats, err := sorter.Sort(&input, output)
	if err != nil {
		log.Fatal(err)
	}

	// Read the sorted records back.
	f, err := os.Open(output)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	for {
		rec, err := recordio.Read(f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(rec))
	}

	fmt.Printf("records: %d\n", stats.Records)

	// Output:
	// apple
	// banana
	// cherry
	// records: 3
}
