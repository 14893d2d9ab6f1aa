package codec

import (
	"fmt"

	"github.com/DanielMehlber/BinarIO/binerr"
)

// Serializable is implemented by composite types that write their fields
// with the functions of this package. Deserialize must read the fields in the
// order Serialize wrote them.
type Serializable interface {
	Serialize(w Writer) error
	Deserialize(r Reader) error
}

// maxObjectPrealloc bounds the up-front allocation of DecodeObjects. The
// length check counts bytes, not objects.
const maxObjectPrealloc = 1 << 10

// EncodeObject serializes obj.
func EncodeObject(w Writer, obj Serializable) error {
	if err := obj.Serialize(w); err != nil {
		return binerr.Annotate(err, "codec.EncodeObject", fmt.Sprintf("cannot serialize %T", obj))
	}
	return nil
}

// DecodeObject deserializes into obj.
func DecodeObject(r Reader, obj Serializable) error {
	if err := obj.Deserialize(r); err != nil {
		return binerr.Annotate(err, "codec.DecodeObject", fmt.Sprintf("cannot deserialize %T", obj))
	}
	return nil
}

// EncodeObjects writes the length of objs as a uint64 followed by every
// object.
func EncodeObjects[T Serializable](w Writer, objs []T) error {
	if err := Encode(w, uint64(len(objs))); err != nil {
		return binerr.Annotate(err, "codec.EncodeObjects", "cannot push array length")
	}

	for i, obj := range objs {
		if err := EncodeObject(w, obj); err != nil {
			return binerr.Annotate(err, "codec.EncodeObjects",
				fmt.Sprintf("cannot push object %d of %d", i+1, len(objs)))
		}
	}

	return nil
}

// DecodeObjects reads objects written by EncodeObjects. PT is the pointer
// type of T that implements Serializable, usually inferred:
//
//	points, err := codec.DecodeObjects[Point](buf)
func DecodeObjects[T any, PT interface {
	*T
	Serializable
}](r Reader) ([]T, error) {
	n, err := Decode[uint64](r)
	if err != nil {
		return nil, binerr.Annotate(err, "codec.DecodeObjects", "cannot pull array length")
	}

	if err := checkLength(r, n, 1, "codec.DecodeObjects"); err != nil {
		return nil, err
	}

	objs := make([]T, 0, min(n, maxObjectPrealloc))
	for i := uint64(0); i < n; i++ {
		var obj T
		if err := DecodeObject(r, PT(&obj)); err != nil {
			return nil, binerr.Annotate(err, "codec.DecodeObjects",
				fmt.Sprintf("cannot pull object %d of %d", i+1, n))
		}
		objs = append(objs, obj)
	}

	return objs, nil
}
