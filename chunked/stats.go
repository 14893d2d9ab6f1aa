package chunked

// Stats counts the work a Buffer has done since it was created.
type Stats struct {
	Flushes      uint64 // Chunks written to the file
	Refills      uint64 // Chunks loaded from the file
	BytesPushed  uint64
	BytesPulled  uint64
	BytesWritten uint64 // Bytes handed to the file by flushes
	BytesRead    uint64 // Bytes loaded from the file by refills
}

// Stats returns a snapshot of the counters.
func (b *Buffer) Stats() Stats {
	return b.stats
}

// ResetStats zeroes the counters.
func (b *Buffer) ResetStats() {
	b.stats = Stats{}
}
