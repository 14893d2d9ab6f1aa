//go:build !unix

package chunked

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
