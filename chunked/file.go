package chunked

// WriteFile opens path for writing, calls fn and closes the Buffer, flushing
// whatever fn left in it. The error of fn takes precedence over the error of
// Close.
func WriteFile(path string, fn func(*Buffer) error, opts ...Option) error {
	return withFile(Write, path, fn, opts...)
}

// ReadFile opens path for reading, calls fn and closes the Buffer.
func ReadFile(path string, fn func(*Buffer) error, opts ...Option) error {
	return withFile(Read, path, fn, opts...)
}

func withFile(mode Mode, path string, fn func(*Buffer) error, opts ...Option) (err error) {
	b, err := OpenFile(mode, path, opts...)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(b)
}
