// Package recordio implements the binary record framing used by partition
// files. Each record is written as a big-endian uint16 length prefix
// followed by exactly that many payload bytes; a file is simply a sequence
// of records terminated by EOF, with no header, footer, or checksum.
//
// Basic usage:
//
//	// Writing a record
//	var buf bytes.Buffer
//	n, err := recordio.Write(&buf, []byte("Hello, World!"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reading records back until EOF
//	for {
//	    rec, err := recordio.Read(&buf)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("Read record: %s\n", rec)
//	}
//
//	// Calculate record size
//	size := recordio.Size([]byte("Hello, World!"))
//
// Read distinguishes a clean end of stream (io.EOF, returned only at a
// record boundary) from a stream truncated mid-record (ErrTruncated, a
// fatal corruption condition). Payloads are limited to MaxRecordSize
// bytes; Write rejects longer records with ErrTooLarge rather than
// truncating them.
package recordio
