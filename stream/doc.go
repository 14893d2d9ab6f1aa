// Package stream reads and writes files holding a sequence of records of one
// Serializable type, one after another, through a chunked buffer.
//
// Basic usage:
//
//	// Writing records
//	w, err := stream.Create[*Point]("points.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range points {
//	    if err := w.Write(p); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	w.Close()
//
//	// Reading records
//	r, err := stream.Open[Point]("points.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	for p, err := range r.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(p)
//	}
//
// File Format:
// Records are stored back to back exactly as their Serialize method writes
// them, with no count, header or separator. The end of the file is the end
// of the stream; a file that ends inside a record is reported as an
// end-of-data error rather than silently cut short.
package stream
