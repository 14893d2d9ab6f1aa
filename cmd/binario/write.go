// cmd/binario/write.go

package main

import (
	"fmt"

	"github.com/DanielMehlber/BinarIO/internal/sample"
	"github.com/DanielMehlber/BinarIO/stream"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func writeFlags() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "write demo samples to a file",
		ArgsUsage: "FILE",
		Action:    write,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "number of samples to write",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "do not show a progress bar",
			},
		},
	}
}

func write(ctx *cli.Context) error {
	path, err := fileArg(ctx)
	if err != nil {
		return err
	}
	count := ctx.Int("count")
	if count < 0 {
		return fmt.Errorf("invalid count %d", count)
	}

	cfg := settings(ctx)
	w, err := stream.Create[*sample.Sample](path, cfg.BufferOptions()...)
	if err != nil {
		return err
	}

	progress, bar := newProgressBar("Writing:", ctx.Bool("quiet"))
	for i := range count {
		s := sample.New(int32(i), uuid.New())
		if err = w.Write(s); err != nil {
			break
		}
		bar.IncrInt64(s.Size())
	}
	if err != nil {
		bar.Abort(false)
	} else {
		bar.SetTotal(-1, true)
	}
	progress.Wait()

	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Infof("wrote %d samples to %s", w.Count(), path)
	fmt.Fprintf(ctx.App.Writer, "wrote %d samples to %s\n", w.Count(), path)
	return nil
}
