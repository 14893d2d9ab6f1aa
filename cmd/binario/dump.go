// cmd/binario/dump.go

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/DanielMehlber/BinarIO/chunked"
	"github.com/urfave/cli/v2"
)

const dumpWidth = 16

func dumpFlags() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print a file as hex, one section per chunk",
		ArgsUsage: "FILE",
		Action:    dump,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "do not highlight chunk headers",
			},
		},
	}
}

func dump(ctx *cli.Context) error {
	path, err := fileArg(ctx)
	if err != nil {
		return err
	}

	color := !ctx.Bool("no-color") && isTerminal(ctx.App.Writer)
	out := bufio.NewWriter(ctx.App.Writer)
	err = chunked.ReadFile(path, func(buf *chunked.Buffer) error {
		return hexDump(out, buf, color)
	}, settings(ctx).BufferOptions()...)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// hexDump pulls every byte left in buf. Rows never cross a chunk boundary.
func hexDump(w io.Writer, buf *chunked.Buffer, color bool) error {
	capacity := int64(buf.Capacity())
	row := make([]byte, 0, dumpWidth)

	var off int64
	for buf.Remaining() > 0 {
		if off%capacity == 0 {
			header := fmt.Sprintf("chunk %d @%d", off/capacity, off)
			if color {
				header = "\x1b[36m" + header + "\x1b[0m"
			}
			if _, err := fmt.Fprintln(w, header); err != nil {
				return err
			}
		}

		c, err := buf.Pull()
		if err != nil {
			return err
		}
		row = append(row, c)
		off++

		if len(row) == dumpWidth || off%capacity == 0 || buf.Remaining() == 0 {
			if err := writeRow(w, off-int64(len(row)), row); err != nil {
				return err
			}
			row = row[:0]
		}
	}
	return nil
}

func writeRow(w io.Writer, off int64, row []byte) error {
	text := make([]byte, len(row))
	for i, c := range row {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		text[i] = c
	}
	_, err := fmt.Fprintf(w, "%08x  %-*s  |%s|\n", off, dumpWidth*3-1, fmt.Sprintf("% x", row), text)
	return err
}
