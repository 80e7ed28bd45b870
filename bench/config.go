// SPDX-License-Identifier: MIT
// Package bench is the benchmarking harness around the multiplication engines.
//
// Purpose:
//   - Generate two seeded random N×N matrices once per run.
//   - For every thread count, time the sequential kernel and each parallel
//     policy, optionally verifying the parallel results against the sequential one.
//   - Render the timings in the classic "Algorithm k (name) time: s seconds" form.
//
// Configuration:
//   - Config mirrors the defaults of the reference program (N=1000, threads
//     {1,2,4}, values in [0,100)) and can be loaded from YAML.
package bench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blockmul/parallel"
)

// Defaults (single source of truth).
const (
	DefaultSize     = 1000
	DefaultSeed     = 1
	DefaultMaxValue = 100
	DefaultRepeat   = 1
)

// DefaultThreads is the thread sweep of the reference program.
var DefaultThreads = []int{1, 2, 4}

// ErrConfig is returned for a configuration the harness cannot run.
var ErrConfig = errors.New("bench: invalid config")

// Config describes one benchmark run.
type Config struct {
	Size          int      `yaml:"size"`           // matrix order N
	Threads       []int    `yaml:"threads"`        // thread counts to sweep; each must divide Size
	Seed          int64    `yaml:"seed"`           // RNG seed for both input matrices
	MaxValue      int32    `yaml:"max_value"`      // cells are drawn from [0, MaxValue)
	Policies      []string `yaml:"policies"`       // parallel policies, in report order
	Repeat        int      `yaml:"repeat"`         // runs per measurement; the fastest is kept
	Verify        bool     `yaml:"verify"`         // compare parallel results with the sequential one
	OverflowCheck bool     `yaml:"overflow_check"` // run kernels in checked int32 mode
}

// DefaultConfig returns the reference-program configuration.
func DefaultConfig() Config {
	return Config{
		Size:     DefaultSize,
		Threads:  append([]int(nil), DefaultThreads...),
		Seed:     DefaultSeed,
		MaxValue: DefaultMaxValue,
		Policies: lo.Map(parallel.Policies(), func(p parallel.Policy, _ int) string { return p.String() }),
		Repeat:   DefaultRepeat,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Unknown keys are rejected; an empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %v: %w", err, ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and that each thread count divides Size.
// Duplicate thread counts are tolerated; Normalize removes them.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size=%d must be > 0: %w", c.Size, ErrConfig)
	}
	if len(c.Threads) == 0 {
		return fmt.Errorf("threads must not be empty: %w", ErrConfig)
	}
	for _, t := range c.Threads {
		if t <= 0 {
			return fmt.Errorf("threads=%d must be > 0: %w", t, ErrConfig)
		}
		if c.Size%t != 0 {
			return fmt.Errorf("size=%d threads=%d: %w: %w", c.Size, t, ErrConfig, parallel.ErrInvalidConfiguration)
		}
	}
	if c.MaxValue < 1 {
		return fmt.Errorf("max_value=%d must be >= 1: %w", c.MaxValue, ErrConfig)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat=%d must be >= 1: %w", c.Repeat, ErrConfig)
	}
	if _, err := c.policies(); err != nil {
		return fmt.Errorf("%w: %w", err, ErrConfig)
	}

	return nil
}

// Normalize returns a copy with duplicate thread counts and policies removed
// (first occurrence wins, order kept).
func (c Config) Normalize() Config {
	c.Threads = lo.Uniq(c.Threads)
	c.Policies = lo.Uniq(c.Policies)

	return c
}

// policies parses Policies in order.
func (c Config) policies() ([]parallel.Policy, error) {
	out := make([]parallel.Policy, 0, len(c.Policies))
	for _, s := range c.Policies {
		p, err := parallel.ParsePolicy(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
