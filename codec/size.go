package codec

import "encoding/binary"

// LengthSize is the size of the length prefix of strings and slices.
const LengthSize = 8

// SizeOf returns the number of bytes Encode writes for a T.
func SizeOf[T Fixed]() int64 {
	var v T
	return int64(binary.Size(v))
}

// StringSize returns the number of bytes EncodeString writes for s.
func StringSize(s string) int64 {
	return LengthSize + int64(len(s))
}

// SliceSize returns the number of bytes EncodeSlice writes for n elements.
func SliceSize[T Fixed](n int) int64 {
	return LengthSize + int64(n)*SizeOf[T]()
}
