// Package chunked implements a fixed-capacity byte buffer bound to a file. The
// buffer is either written to or read from, one byte at a time, and moves data
// to and from the file in chunks of up to Capacity bytes.
//
// In Write mode every Push appends to the current chunk; when the chunk is
// full it is flushed to the file before Push returns. In Read mode the first
// chunk is loaded on Open and the next one is loaded by the Pull that needs
// it. The last chunk of a file is usually shorter than Capacity and Pull never
// reads past it.
//
// Basic usage:
//
//	buf, err := chunked.OpenFile(chunked.Write, "data.bin", chunked.WithCapacity(4096))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Close()
//
//	for _, c := range []byte("hello") {
//	    if err := buf.Push(c); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Close flushes whatever is still buffered. WriteFile and ReadFile wrap a
// function in Open and Close so the flush cannot be forgotten:
//
//	err := chunked.WriteFile("data.bin", func(buf *chunked.Buffer) error {
//	    return codec.Encode(buf, int32(5))
//	})
//
// File Format:
// There is none. The file is the raw sequence of bytes pushed, with no header,
// magic bytes or version. Reading it back means pulling in the same order.
//
// A Buffer is not safe for concurrent use.
package chunked
