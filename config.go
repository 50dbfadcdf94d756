// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the simulation parameters. It can be decoded from YAML:
//
//	workers: 5
//	base_duration: 60
//	trace_limit: 0
type Config struct {
	// Workers is the number of simulated workers in the pool.
	Workers int `yaml:"workers"`
	// BaseDuration is the fixed cost added to every task's duration. See
	// [Duration].
	BaseDuration int `yaml:"base_duration"`
	// TraceLimit bounds the number of events kept in a run's [Trace]. Zero
	// keeps every event.
	TraceLimit int `yaml:"trace_limit"`
}

// DefaultConfig matches the classic puzzle: five workers and a 60 tick base
// cost per task.
var DefaultConfig = Config{
	Workers:      5,
	BaseDuration: 60,
}

// Validate reports the first problem found in c, wrapped in
// [ErrInvalidConfig].
func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case c.BaseDuration < 0:
		return fmt.Errorf("%w: base_duration must not be negative, got %d", ErrInvalidConfig, c.BaseDuration)
	case c.TraceLimit < 0:
		return fmt.Errorf("%w: trace_limit must not be negative, got %d", ErrInvalidConfig, c.TraceLimit)
	}
	return nil
}

// LoadConfig decodes a YAML document from r on top of [DefaultConfig] and
// validates the result. Unknown fields are rejected. An empty document yields
// the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is like [LoadConfig] but reads the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}
