package codec

import (
	"fmt"

	"github.com/DanielMehlber/BinarIO/binerr"
)

// EncodeString writes the length of s as a uint64 followed by its bytes.
func EncodeString(w Writer, s string) error {
	if err := Encode(w, uint64(len(s))); err != nil {
		return binerr.Annotate(err, "codec.EncodeString", "cannot push string length")
	}

	for i := 0; i < len(s); i++ {
		if err := EncodeByte(w, s[i]); err != nil {
			return binerr.Annotate(err, "codec.EncodeString",
				fmt.Sprintf("cannot push character %d of %d", i+1, len(s)))
		}
	}

	return nil
}

// DecodeString reads a string written by EncodeString.
func DecodeString(r Reader) (string, error) {
	n, err := Decode[uint64](r)
	if err != nil {
		return "", binerr.Annotate(err, "codec.DecodeString", "cannot pull string length")
	}

	if err := checkLength(r, n, 1, "codec.DecodeString"); err != nil {
		return "", err
	}

	b := make([]byte, 0, initialCap(r, n))
	for i := uint64(0); i < n; i++ {
		c, err := DecodeByte(r)
		if err != nil {
			return "", binerr.Annotate(err, "codec.DecodeString",
				fmt.Sprintf("cannot pull character %d of %d", i+1, n))
		}
		b = append(b, c)
	}

	return string(b), nil
}
