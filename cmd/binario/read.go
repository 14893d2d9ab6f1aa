// cmd/binario/read.go

package main

import (
	"fmt"

	"github.com/DanielMehlber/BinarIO/internal/sample"
	"github.com/DanielMehlber/BinarIO/stream"
	"github.com/urfave/cli/v2"
)

func readFlags() *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "decode and print the samples of a file",
		ArgsUsage: "FILE",
		Action:    read,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "stop after this many samples (0 reads all)",
			},
		},
	}
}

func read(ctx *cli.Context) error {
	path, err := fileArg(ctx)
	if err != nil {
		return err
	}

	cfg := settings(ctx)
	r, err := stream.Open[sample.Sample](path, cfg.BufferOptions()...)
	if err != nil {
		return err
	}
	defer r.Close()

	limit := ctx.Int("limit")
	for s, err := range r.All() {
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		fmt.Fprintf(ctx.App.Writer, "%d: %s\n", r.Count()-1, &s)
		if limit > 0 && r.Count() >= limit {
			break
		}
	}
	logger.Debugf("read %d samples from %s", r.Count(), path)
	return nil
}
