package stream

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/DanielMehlber/BinarIO/binerr"
	"github.com/DanielMehlber/BinarIO/chunked"
	"github.com/DanielMehlber/BinarIO/codec"
)

// WriteCloser is the sink a Writer encodes into.
type WriteCloser interface {
	codec.Writer
	Close() error
}

// ReadCloser is the source a Reader decodes from. Remaining tells a clean
// end of stream apart from a truncated record.
type ReadCloser interface {
	codec.Reader
	Remaining() int64
	Close() error
}

// Writer appends records of type T.
type Writer[T codec.Serializable] struct {
	w      WriteCloser
	count  int
	closed bool
}

// NewWriter returns a Writer encoding into w. Closing the Writer closes w.
func NewWriter[T codec.Serializable](w WriteCloser) *Writer[T] {
	return &Writer[T]{w: w}
}

// Create opens path for writing and returns a Writer over it.
func Create[T codec.Serializable](path string, opts ...chunked.Option) (*Writer[T], error) {
	buf, err := chunked.OpenFile(chunked.Write, path, opts...)
	if err != nil {
		return nil, binerr.Annotate(err, "stream.Create", "cannot open record file")
	}
	return NewWriter[T](buf), nil
}

// Write encodes rec at the end of the stream.
func (w *Writer[T]) Write(rec T) error {
	if w.closed {
		return binerr.New(binerr.ErrNotOpen, "stream.Writer", "writer is closed")
	}

	if err := codec.EncodeObject(w.w, rec); err != nil {
		return binerr.Annotate(err, "stream.Writer", fmt.Sprintf("cannot write record %d", w.count+1))
	}
	w.count++

	return nil
}

// Count returns the number of records written.
func (w *Writer[T]) Count() int {
	return w.count
}

// Close flushes and closes the underlying sink. Further calls do nothing.
func (w *Writer[T]) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.w.Close(); err != nil {
		return binerr.Annotate(err, "stream.Writer", "cannot close record file")
	}
	return nil
}

// Reader decodes records of type T. PT is *T and is normally inferred.
type Reader[T any, PT interface {
	*T
	codec.Serializable
}] struct {
	r      ReadCloser
	count  int
	closed bool
}

// NewReader returns a Reader decoding from r. Closing the Reader closes r.
func NewReader[T any, PT interface {
	*T
	codec.Serializable
}](r ReadCloser) *Reader[T, PT] {
	return &Reader[T, PT]{r: r}
}

// Open opens path for reading and returns a Reader over it.
func Open[T any, PT interface {
	*T
	codec.Serializable
}](path string, opts ...chunked.Option) (*Reader[T, PT], error) {
	buf, err := chunked.OpenFile(chunked.Read, path, opts...)
	if err != nil {
		return nil, binerr.Annotate(err, "stream.Open", "cannot open record file")
	}
	return NewReader[T, PT](buf), nil
}

// Next decodes the next record. It returns io.EOF when the stream ends
// between two records and binerr.ErrNotOpen after Close.
func (r *Reader[T, PT]) Next() (T, error) {
	var rec T

	if r.closed {
		return rec, binerr.New(binerr.ErrNotOpen, "stream.Reader", "reader is closed")
	}

	if r.r.Remaining() <= 0 {
		return rec, io.EOF
	}

	if err := codec.DecodeObject(r.r, PT(&rec)); err != nil {
		return rec, binerr.Annotate(err, "stream.Reader", fmt.Sprintf("cannot read record %d", r.count+1))
	}
	r.count++

	return rec, nil
}

// All iterates over the remaining records. Iteration stops after the first
// error, which is yielded with a zero record.
func (r *Reader[T, PT]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Count returns the number of records read.
func (r *Reader[T, PT]) Count() int {
	return r.count
}

// Close closes the underlying source. Further calls do nothing.
func (r *Reader[T, PT]) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.r.Close(); err != nil {
		return binerr.Annotate(err, "stream.Reader", "cannot close record file")
	}
	return nil
}

// WriteFile writes recs to path, replacing its content.
func WriteFile[T codec.Serializable](path string, recs []T, opts ...chunked.Option) (err error) {
	w, err := Create[T](path, opts...)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return nil
}

// ReadFile reads every record stored in path.
func ReadFile[T any, PT interface {
	*T
	codec.Serializable
}](path string, opts ...chunked.Option) ([]T, error) {
	r, err := Open[T, PT](path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	recs := make([]T, 0, 1)
	for rec, err := range r.All() {
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}
