// Package binerr defines the error kinds shared by the chunked buffer and the
// codec, and an error type that accumulates context as it propagates.
//
// Every layer that sees a failure annotates it with its origin and what it was
// trying to do, then returns it. The kind never changes on the way up:
//
//	b, err := buf.Pull()
//	if err != nil {
//	    return binerr.Annotate(err, "codec.DecodeString", "cannot pull character 3 of 8")
//	}
//
// Callers inspect the result with errors.Is against the exported kinds, or with
// KindOf and Trace:
//
//	if errors.Is(err, binerr.ErrEndOfData) {
//	    // reached the end of the file
//	}
//	for _, line := range binerr.Trace(err) {
//	    log.Println(line)
//	}
package binerr
