// cmd/binario/stat.go

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func statFlags() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "show how a file splits into chunks",
		ArgsUsage: "FILE",
		Action:    stat,
	}
}

func stat(ctx *cli.Context) error {
	path, err := fileArg(ctx)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	capacity := int64(settings(ctx).Capacity)
	size := info.Size()
	chunks := (size + capacity - 1) / capacity
	last := size - (chunks-1)*capacity
	if chunks == 0 {
		last = 0
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "file:       %s\n", path)
	fmt.Fprintf(w, "size:       %s (%s bytes)\n", humanize.IBytes(uint64(size)), humanize.Comma(size))
	fmt.Fprintf(w, "capacity:   %s bytes\n", humanize.Comma(capacity))
	fmt.Fprintf(w, "chunks:     %d\n", chunks)
	fmt.Fprintf(w, "last chunk: %s bytes\n", humanize.Comma(last))
	return nil
}
