package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"

	"github.com/DanielMehlber/BinarIO/binerr"
)

// ErrUnsupportedType is the kind of error returned for values that are not
// fixed-size, pointers included.
var ErrUnsupportedType = errors.New("codec: unsupported type")

var byteOrder = binary.LittleEndian

// Writer is a sink of single bytes.
type Writer interface {
	Push(c byte) error
}

// Reader is a source of single bytes.
type Reader interface {
	Pull() (byte, error)
}

// Fixed is the set of types Encode and Decode accept. Every member has a size
// known at compile time and none of them is a pointer.
type Fixed interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// remainer is implemented by readers that know how many bytes are left.
type remainer interface {
	Remaining() int64
}

// Encode writes the little-endian representation of v.
func Encode[T Fixed](w Writer, v T) error {
	var scratch [16]byte
	p, err := binary.Append(scratch[:0], byteOrder, v)
	if err != nil {
		return binerr.Wrap(ErrUnsupportedType, err, "codec.Encode", fmt.Sprintf("cannot represent %T", v))
	}

	return push(w, p, "codec.Encode")
}

// Decode reads a value written by Encode.
func Decode[T Fixed](r Reader) (T, error) {
	var (
		v       T
		scratch [16]byte
	)
	p := scratch[:binary.Size(v)]

	if err := pull(r, p, "codec.Decode"); err != nil {
		return v, err
	}

	if _, err := binary.Decode(p, byteOrder, &v); err != nil {
		return v, binerr.Wrap(ErrUnsupportedType, err, "codec.Decode", fmt.Sprintf("cannot represent %T", v))
	}

	return v, nil
}

// EncodeByte writes c as a single byte.
func EncodeByte(w Writer, c byte) error {
	if err := w.Push(c); err != nil {
		return binerr.Annotate(err, "codec.EncodeByte", "cannot push char into buffer")
	}
	return nil
}

// DecodeByte reads a single byte.
func DecodeByte(r Reader) (byte, error) {
	c, err := r.Pull()
	if err != nil {
		return 0, binerr.Annotate(err, "codec.DecodeByte", "cannot pull char from buffer")
	}
	return c, nil
}

// EncodeValue writes v, which must be a fixed-size value that Encode does not
// cover: an array or a struct made of fixed-size fields. Pointers, slices,
// maps and strings are rejected before anything is written.
func EncodeValue(w Writer, v any) error {
	if err := checkFixed(reflect.TypeOf(v)); err != nil {
		return binerr.Annotate(err, "codec.EncodeValue", fmt.Sprintf("cannot encode %T", v))
	}

	p, err := binary.Append(nil, byteOrder, v)
	if err != nil {
		return binerr.Wrap(ErrUnsupportedType, err, "codec.EncodeValue", fmt.Sprintf("cannot represent %T", v))
	}

	return push(w, p, "codec.EncodeValue")
}

// DecodeValue reads into ptr a value written by EncodeValue. ptr must be a
// non-nil pointer to a fixed-size value.
func DecodeValue(r Reader, ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return binerr.New(ErrUnsupportedType, "codec.DecodeValue",
			fmt.Sprintf("need a non-nil pointer, got %T", ptr))
	}
	if err := checkFixed(rv.Type().Elem()); err != nil {
		return binerr.Annotate(err, "codec.DecodeValue", fmt.Sprintf("cannot decode into %T", ptr))
	}

	p := make([]byte, binary.Size(ptr))
	if err := pull(r, p, "codec.DecodeValue"); err != nil {
		return err
	}

	if _, err := binary.Decode(p, byteOrder, ptr); err != nil {
		return binerr.Wrap(ErrUnsupportedType, err, "codec.DecodeValue", fmt.Sprintf("cannot represent %T", ptr))
	}

	return nil
}

// checkFixed accepts scalar kinds, and arrays and structs built from them.
// Struct fields must be exported or blank.
func checkFixed(t reflect.Type) error {
	if t == nil {
		return binerr.New(ErrUnsupportedType, "codec.checkFixed", "nil has no size")
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return checkFixed(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() && f.Name != "_" {
				return binerr.New(ErrUnsupportedType, "codec.checkFixed",
					fmt.Sprintf("field %s of %s is unexported", f.Name, t))
			}
			if err := checkFixed(f.Type); err != nil {
				return binerr.Annotate(err, "codec.checkFixed", fmt.Sprintf("field %s of %s", f.Name, t))
			}
		}
		return nil
	default:
		return binerr.New(ErrUnsupportedType, "codec.checkFixed", fmt.Sprintf("%s is not fixed-size", t))
	}
}

func push(w Writer, p []byte, origin string) error {
	for i, c := range p {
		if err := w.Push(c); err != nil {
			return binerr.Annotate(err, origin, fmt.Sprintf("cannot push byte %d of %d into buffer", i+1, len(p)))
		}
	}
	return nil
}

func pull(r Reader, p []byte, origin string) error {
	for i := range p {
		c, err := r.Pull()
		if err != nil {
			return binerr.Annotate(err, origin, fmt.Sprintf("cannot pull byte %d of %d from buffer", i+1, len(p)))
		}
		p[i] = c
	}
	return nil
}

// checkLength rejects a length prefix of n elements of size bytes each when
// the reader knows fewer bytes are left.
func checkLength(r Reader, n uint64, size int, origin string) error {
	rr, ok := r.(remainer)
	if !ok || n == 0 {
		return nil
	}

	left := rr.Remaining()
	if left < 0 || n > uint64(left)/uint64(size) {
		return binerr.New(binerr.ErrEndOfData, origin,
			fmt.Sprintf("length %d needs more than the %d bytes left", n, left))
	}
	return nil
}

// initialCap bounds the up-front allocation for readers that cannot report
// how much is left.
func initialCap(r Reader, n uint64) int {
	if _, ok := r.(remainer); ok {
		return int(n)
	}
	return int(min(n, 1<<16))
}
