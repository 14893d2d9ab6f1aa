// Package config loads the settings of the binario command from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DanielMehlber/BinarIO/chunked"
	"github.com/DanielMehlber/BinarIO/internal/logging"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCapacity = errors.New("config: capacity must be greater than 0")

// Config holds the buffer and logging settings.
//
//	capacity: 5000
//	sync: false
//	log_level: info
type Config struct {
	Capacity int    `yaml:"capacity"`
	Sync     bool   `yaml:"sync"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Capacity: chunked.DefaultCapacity,
		Sync:     false,
		LogLevel: "info",
	}
}

// Load reads the file at path on top of Default. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the settings can be used.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BufferOptions translates the settings into chunked options.
func (c Config) BufferOptions() []chunked.Option {
	return []chunked.Option{
		chunked.WithCapacity(c.Capacity),
		chunked.WithSync(c.Sync),
	}
}

// Marshal renders the settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
