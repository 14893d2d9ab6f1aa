package codec_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DanielMehlber/BinarIO/chunked"
	"github.com/DanielMehlber/BinarIO/codec"
)

// ExampleEncode demonstrates writing a few values to a file and reading them
// back in the same order.
func ExampleEncode() {
	dir, err := os.MkdirTemp("", "codec-*")
	if err != nil {
		fmt.Printf("Failed to create temp dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "values.bin")

	err = chunked.WriteFile(path, func(buf *chunked.Buffer) error {
		if err := codec.Encode(buf, int32(5)); err != nil {
			return err
		}
		if err := codec.Encode(buf, float32(0.5)); err != nil {
			return err
		}
		if err := codec.EncodeString(buf, "Hallo"); err != nil {
			return err
		}
		return codec.EncodeSlice(buf, []float64{1, 2, 3, 4, 5})
	})
	if err != nil {
		fmt.Printf("Error writing: %v\n", err)
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %d bytes\n", info.Size())

	err = chunked.ReadFile(path, func(buf *chunked.Buffer) error {
		a, err := codec.Decode[int32](buf)
		if err != nil {
			return err
		}
		b, err := codec.Decode[float32](buf)
		if err != nil {
			return err
		}
		text, err := codec.DecodeString(buf)
		if err != nil {
			return err
		}
		arr, err := codec.DecodeSlice[float64](buf)
		if err != nil {
			return err
		}
		fmt.Printf("a=%d b=%g text=%s arr=%v\n", a, b, text, arr)
		return nil
	})
	if err != nil {
		fmt.Printf("Error reading: %v\n", err)
	}

	// Output:
	// Wrote 69 bytes
	// a=5 b=0.5 text=Hallo arr=[1 2 3 4 5]
}

// ExampleDecode_endOfData shows the error returned when reading past the end.
func ExampleDecode_endOfData() {
	dir, err := os.MkdirTemp("", "codec-*")
	if err != nil {
		fmt.Printf("Failed to create temp dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "short.bin")

	if err := chunked.WriteFile(path, func(buf *chunked.Buffer) error {
		return codec.Encode(buf, uint16(7))
	}); err != nil {
		fmt.Printf("Error writing: %v\n", err)
		return
	}

	err = chunked.ReadFile(path, func(buf *chunked.Buffer) error {
		_, err := codec.Decode[uint32](buf)
		return err
	})
	fmt.Println(err)

	// Output:
	// codec.Decode: cannot pull byte 3 of 4 from buffer: chunked.Pull: cannot read next byte section: chunked.refill: no bytes left to read, reached end of file: end of data
}
