// Package codec encodes typed values into a byte-at-a-time sink and decodes
// them from a byte-at-a-time source. It knows nothing about files or chunks:
// anything with Push or Pull will do, and *chunked.Buffer has both.
//
// Every multi-byte value is written in little-endian order, whatever the
// machine. Strings and slices carry a uint64 length prefix. There is no
// header, tag or version anywhere, so values must be decoded in exactly the
// order they were encoded.
//
// Basic usage:
//
//	buf, _ := chunked.OpenFile(chunked.Write, "sample.bin")
//	codec.Encode(buf, int32(5))
//	codec.Encode(buf, float32(0.5))
//	codec.EncodeString(buf, "Hallo")
//	buf.Close()
//
//	buf, _ = chunked.OpenFile(chunked.Read, "sample.bin")
//	defer buf.Close()
//	i, _ := codec.Decode[int32](buf)
//	f, _ := codec.Decode[float32](buf)
//	s, _ := codec.DecodeString(buf)
//
// Composite types implement Serializable by calling these functions for each
// field in a fixed order.
//
// Wire Format:
//   - Fixed: binary.Size(v) bytes, little-endian
//   - Byte: 1 byte
//   - String: length (uint64) followed by the bytes of the string
//   - Slice: length (uint64) followed by each element
//   - Serializable: whatever Serialize writes
package codec
