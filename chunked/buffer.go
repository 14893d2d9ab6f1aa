package chunked

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/DanielMehlber/BinarIO/binerr"
	"github.com/sirupsen/logrus"
)

// Mode selects whether a Buffer reads from or writes to its file.
type Mode int

const (
	Read Mode = iota
	Write
)

func (m Mode) String() string {
	switch m {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

var (
	ErrInvalidCapacity = errors.New("chunked: capacity must be greater than 0")
	// ErrWrongMode is the cause of the IOFailure returned by Push on a Buffer
	// opened for reading, and by Pull on one opened for writing.
	ErrWrongMode = errors.New("chunked: operation not allowed in this mode")
)

// Buffer is a fixed-capacity chunk of memory bound to at most one file.
//
// In Write mode storage[0:cursor] holds bytes not yet flushed. In Read mode
// storage[0:valid] holds the most recently loaded chunk and storage[0:cursor]
// of it has been pulled already.
type Buffer struct {
	storage  []byte
	cursor   int
	valid    int
	mode     Mode
	file     *os.File
	path     string
	fileSize int64
	filePos  int64
	opts     options
	stats    Stats
}

// New creates a Buffer with no file bound.
func New(opts ...Option) (*Buffer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	b := &Buffer{
		storage: make([]byte, o.capacity),
		opts:    o,
	}
	runtime.SetFinalizer(b, (*Buffer).finalize)

	return b, nil
}

// OpenFile creates a Buffer and opens path in the given mode.
func OpenFile(mode Mode, path string, opts ...Option) (*Buffer, error) {
	b, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := b.Open(mode, path); err != nil {
		return nil, err
	}

	return b, nil
}

// Open binds the Buffer to the file at path. Read opens an existing file and
// loads its first chunk. Write creates the file, truncating any content.
// A file that is already open is closed first.
func (b *Buffer) Open(mode Mode, path string) error {
	if b.file != nil {
		if err := b.Close(); err != nil {
			return binerr.Annotate(err, "chunked.Open", "cannot close previously opened file")
		}
	}

	b.cursor = 0
	b.valid = 0
	b.fileSize = 0
	b.filePos = 0

	switch mode {
	case Read:
		f, err := os.Open(path)
		if err != nil {
			return binerr.Wrap(binerr.ErrOpenFailed, err, "chunked.Open",
				fmt.Sprintf("cannot open %s for reading, maybe it doesn't exist", path))
		}

		info, err := f.Stat()
		if err != nil {
			f.Close()
			return binerr.Wrap(binerr.ErrOpenFailed, err, "chunked.Open",
				fmt.Sprintf("cannot determine size of %s", path))
		}

		b.bind(f, mode, path)
		b.fileSize = info.Size()

		if b.fileSize > 0 {
			if err := b.refill(); err != nil {
				b.release()
				return binerr.Annotate(err, "chunked.Open", "cannot load first chunk")
			}
		}
	case Write:
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return binerr.Wrap(binerr.ErrOpenFailed, err, "chunked.Open",
				fmt.Sprintf("cannot open %s for writing", path))
		}

		b.bind(f, mode, path)
	default:
		return binerr.New(binerr.ErrOpenFailed, "chunked.Open", fmt.Sprintf("unknown %s", mode))
	}

	b.log().WithFields(logrus.Fields{
		"capacity": len(b.storage),
		"size":     b.fileSize,
	}).Debugf("opened for %s", mode)

	return nil
}

// Push appends c to the current chunk. A full chunk is flushed to the file
// before Push returns.
func (b *Buffer) Push(c byte) error {
	if err := b.check(Write, "chunked.Push"); err != nil {
		return err
	}

	if b.cursor == len(b.storage) {
		return binerr.New(binerr.ErrIOFailure, "chunked.Push", "chunk is still full after a failed flush")
	}

	b.storage[b.cursor] = c
	b.cursor++
	b.stats.BytesPushed++

	if b.cursor == len(b.storage) {
		if err := b.flush(); err != nil {
			return binerr.Annotate(err, "chunked.Push", "cannot write next byte section")
		}
	}

	return nil
}

// Pull returns the next byte of the file. When the current chunk is used up
// the next one is loaded first. Pull fails with binerr.ErrEndOfData once
// every byte of the file has been returned.
func (b *Buffer) Pull() (byte, error) {
	if err := b.check(Read, "chunked.Pull"); err != nil {
		return 0, err
	}

	if b.cursor == b.valid {
		if err := b.refill(); err != nil {
			return 0, binerr.Annotate(err, "chunked.Pull", "cannot read next byte section")
		}
	}

	c := b.storage[b.cursor]
	b.cursor++
	b.stats.BytesPulled++

	return c, nil
}

// Finish flushes the bytes still held in Write mode and, with WithSync,
// fsyncs the file. It does nothing in Read mode or with no file open.
func (b *Buffer) Finish() error {
	if b.file == nil || b.mode != Write {
		return nil
	}

	if b.cursor > 0 {
		if err := b.flush(); err != nil {
			return binerr.Annotate(err, "chunked.Finish", "cannot write final byte section")
		}
	}

	if b.opts.sync {
		if err := syncFile(b.file); err != nil {
			return binerr.Wrap(binerr.ErrIOFailure, err, "chunked.Finish", "cannot sync file")
		}
	}

	return nil
}

// Close finishes the session and releases the file. The file is released even
// when Finish fails. Closing a Buffer with no file open does nothing.
func (b *Buffer) Close() error {
	if b.file == nil {
		return nil
	}

	err := b.Finish()
	if cerr := b.release(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

// Capacity returns the chunk size in bytes.
func (b *Buffer) Capacity() int {
	return len(b.storage)
}

// Cursor returns the position of the next byte within the current chunk.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Mode returns the mode of the current or most recent session.
func (b *Buffer) Mode() Mode {
	return b.mode
}

// IsOpen reports whether a file is bound.
func (b *Buffer) IsOpen() bool {
	return b.file != nil
}

// Path returns the path of the current or most recent file.
func (b *Buffer) Path() string {
	return b.path
}

// Remaining returns how many bytes Pull can still return. It is 0 unless a
// file is open for reading.
func (b *Buffer) Remaining() int64 {
	if b.file == nil || b.mode != Read {
		return 0
	}
	return b.fileSize - b.filePos + int64(b.valid-b.cursor)
}

func (b *Buffer) bind(f *os.File, mode Mode, path string) {
	b.file = f
	b.mode = mode
	b.path = path
}

func (b *Buffer) release() error {
	f := b.file
	b.file = nil
	b.cursor = 0
	b.valid = 0

	if err := f.Close(); err != nil {
		return binerr.Wrap(binerr.ErrIOFailure, err, "chunked.Close", fmt.Sprintf("cannot close %s", b.path))
	}

	b.log().WithFields(logrus.Fields{
		"flushes": b.stats.Flushes,
		"refills": b.stats.Refills,
	}).Debugf("closed after %s", b.mode)

	return nil
}

// refill loads the next chunk, which is shorter than capacity at the end of
// the file.
func (b *Buffer) refill() error {
	remaining := b.fileSize - b.filePos
	if remaining <= 0 {
		return binerr.New(binerr.ErrEndOfData, "chunked.refill", "no bytes left to read, reached end of file")
	}

	want := int(min(int64(len(b.storage)), remaining))
	n, err := io.ReadFull(b.file, b.storage[:want])

	b.filePos += int64(n)
	b.valid = n
	b.cursor = 0
	b.stats.BytesRead += uint64(n)

	if err != nil {
		return binerr.Wrap(binerr.ErrIOFailure, err, "chunked.refill",
			fmt.Sprintf("read %d of %d bytes at offset %d", n, want, b.filePos-int64(n)))
	}

	b.stats.Refills++
	b.log().Tracef("loaded chunk of %d bytes, %d left in file", n, b.fileSize-b.filePos)

	return nil
}

// flush writes storage[0:cursor]. Bytes the file did not accept are kept at
// the front of the chunk.
func (b *Buffer) flush() error {
	pending := b.cursor
	n, err := b.file.Write(b.storage[:pending])

	b.filePos += int64(n)
	b.stats.BytesWritten += uint64(n)

	if err != nil {
		copy(b.storage, b.storage[n:pending])
		b.cursor = pending - n
		return binerr.Wrap(binerr.ErrIOFailure, err, "chunked.flush",
			fmt.Sprintf("wrote %d of %d bytes", n, pending))
	}

	b.cursor = 0
	b.stats.Flushes++
	b.log().Tracef("flushed chunk of %d bytes, %d written in total", n, b.filePos)

	return nil
}

func (b *Buffer) check(want Mode, origin string) error {
	if b.file == nil {
		return binerr.New(binerr.ErrNotOpen, origin, "buffer is not bound to a file")
	}
	if b.mode != want {
		return binerr.Wrap(binerr.ErrIOFailure, ErrWrongMode, origin,
			fmt.Sprintf("buffer is open for %s", b.mode))
	}
	return nil
}

func (b *Buffer) log() logrus.Ext1FieldLogger {
	return b.opts.logger.WithField("path", b.path)
}

// finalize closes a Buffer that became unreachable while still open so that
// buffered writes reach the file.
func (b *Buffer) finalize() {
	if b.file == nil {
		return
	}

	b.opts.logger.WithField("path", b.path).Warn("buffer was not closed, closing it now")
	if err := b.Close(); err != nil {
		b.opts.logger.WithField("path", b.path).Errorf("closing unreferenced buffer: %v", err)
	}
}
