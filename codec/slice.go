package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/DanielMehlber/BinarIO/binerr"
)

// EncodeSlice writes the length of s as a uint64 followed by every element.
func EncodeSlice[T Fixed](w Writer, s []T) error {
	if err := Encode(w, uint64(len(s))); err != nil {
		return binerr.Annotate(err, "codec.EncodeSlice", "cannot push array length")
	}

	for i, v := range s {
		if err := Encode(w, v); err != nil {
			return binerr.Annotate(err, "codec.EncodeSlice",
				fmt.Sprintf("cannot push element %d of %d", i+1, len(s)))
		}
	}

	return nil
}

// DecodeSlice reads a slice written by EncodeSlice. The result is newly
// allocated and never nil.
func DecodeSlice[T Fixed](r Reader) ([]T, error) {
	n, err := Decode[uint64](r)
	if err != nil {
		return nil, binerr.Annotate(err, "codec.DecodeSlice", "cannot pull array length")
	}

	var zero T
	if err := checkLength(r, n, binary.Size(zero), "codec.DecodeSlice"); err != nil {
		return nil, err
	}

	s := make([]T, 0, initialCap(r, n))
	for i := uint64(0); i < n; i++ {
		v, err := Decode[T](r)
		if err != nil {
			return nil, binerr.Annotate(err, "codec.DecodeSlice",
				fmt.Sprintf("cannot pull element %d of %d", i+1, n))
		}
		s = append(s, v)
	}

	return s, nil
}

// EncodeBytes is EncodeSlice for byte slices.
func EncodeBytes(w Writer, b []byte) error {
	return EncodeSlice(w, b)
}

// DecodeBytes is DecodeSlice for byte slices.
func DecodeBytes(r Reader) ([]byte, error) {
	return DecodeSlice[byte](r)
}
