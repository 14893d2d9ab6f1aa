// cmd/binario/main.go

package main

import (
	"fmt"
	"os"

	"github.com/DanielMehlber/BinarIO/internal/config"
	"github.com/DanielMehlber/BinarIO/internal/logging"
	"github.com/urfave/cli/v2"
)

const version = "0.3.0"

var logger = logging.GetLogger("binario")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "binario",
		Usage:   "write and inspect chunked binary files",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with buffer and logging settings",
				EnvVars: []string{"BINARIO_CONFIG"},
			},
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "chunk capacity in bytes (overrides the config file)",
			},
			&cli.BoolFlag{
				Name:  "sync",
				Usage: "fsync the file when a write session finishes",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			writeFlags(),
			readFlags(),
			dumpFlags(),
			statFlags(),
		},
	}
}

// setup resolves the settings once and stores them in the app metadata.
func setup(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}
	if ctx.IsSet("capacity") {
		cfg.Capacity = ctx.Int("capacity")
	}
	if ctx.IsSet("sync") {
		cfg.Sync = ctx.Bool("sync")
	}
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetLevel(lvl)

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]interface{})
	}
	ctx.App.Metadata["config"] = cfg
	logger.Debugf("capacity %d, sync %t", cfg.Capacity, cfg.Sync)
	return nil
}

func settings(ctx *cli.Context) config.Config {
	if cfg, ok := ctx.App.Metadata["config"].(config.Config); ok {
		return cfg
	}
	return config.Default()
}

func fileArg(ctx *cli.Context) (string, error) {
	if ctx.Args().Len() < 1 {
		return "", fmt.Errorf("FILE is needed")
	}
	return ctx.Args().First(), nil
}
