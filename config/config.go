// SPDX-License-Identifier: MIT
// Package: sparsebench/config
//
// config.go - the Config type, its defaults and validation.
//
// Defaults (documented, deterministic):
//   - run:   1000 x 1000 matrix, 10^4 values, 10^5 searches (exponents 3/4/5)
//   - sweep: 1% sparsity, dims 10^1..10^3, searches 10^3..10^5, hash index
//   - index: the production kinds (hash, tree, sorted, bitmap)
//   - seed:  1, log level info, text logs

package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsebench/harness"
	"github.com/katalvlaran/sparsebench/occupancy"
)

// Default exponents of the run command.
const (
	DefaultDimExp      = 3
	DefaultValuesExp   = 4
	DefaultSearchesExp = 5
)

// MaxSweepDimExp bounds sweep dimensions so dim*dim stays inside int.
const MaxSweepDimExp = 9

// Config is the full application configuration.
type Config struct {
	Seed       int64       `yaml:"seed"`
	LogLevel   string      `yaml:"log_level"`
	LogJSON    bool        `yaml:"log_json"`
	PayloadLen int         `yaml:"payload_len"`
	Index      []string    `yaml:"index"`
	Run        RunConfig   `yaml:"run"`
	Sweep      SweepConfig `yaml:"sweep"`
}

// RunConfig sizes one comparison run. Rows and columns are both Dim.
type RunConfig struct {
	Dim      int `yaml:"dim"`
	Values   int `yaml:"values"`
	Searches int `yaml:"searches"`
}

// SweepConfig describes the parameter grid of the sweep command.
type SweepConfig struct {
	Sparsity     float64 `yaml:"sparsity"`
	MinDimExp    int     `yaml:"min_dim_exp"`
	MaxDimExp    int     `yaml:"max_dim_exp"`
	MinSearchExp int     `yaml:"min_search_exp"`
	MaxSearchExp int     `yaml:"max_search_exp"`
	Index        string  `yaml:"index"`
	Out          string  `yaml:"out"`
}

// Default returns the documented defaults.
func Default() Config {
	dim, _ := Pow10(DefaultDimExp)
	values, _ := Pow10(DefaultValuesExp)
	searches, _ := Pow10(DefaultSearchesExp)
	kinds := occupancy.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return Config{
		Seed:       harness.DefaultSeed,
		LogLevel:   "info",
		PayloadLen: harness.DefaultPayloadLen,
		Index:      names,
		Run:        RunConfig{Dim: dim, Values: values, Searches: searches},
		Sweep: SweepConfig{
			Sparsity:     1,
			MinDimExp:    1,
			MaxDimExp:    3,
			MinSearchExp: 3,
			MaxSearchExp: 5,
			Index:        occupancy.KindHash.String(),
			Out:          "sweep.csv",
		},
	}
}

// Load reads a YAML file over Default() and validates the result.
// Keys absent from the file keep their defaults.
// Errors: ErrRead, then anything Validate reports.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%q): %v: %w", path, err, ErrRead)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("Load(%q): %v: %w", path, err, ErrRead)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("Load(%q): %w", path, err)
	}

	return cfg, nil
}

// Write stores c as YAML at path.
func (c Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("Config.Write: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks every setting against its domain.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.PayloadLen < 0 {
		return invalidf("payload_len", c.PayloadLen)
	}
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("Config.Validate: index: %w", err)
	}
	if c.Run.Dim < 1 {
		return invalidf("run.dim", c.Run.Dim)
	}
	if c.Run.Values < 0 {
		return invalidf("run.values", c.Run.Values)
	}
	if c.Run.Searches < 0 {
		return invalidf("run.searches", c.Run.Searches)
	}
	if uint64(c.Run.Dim) > math.MaxInt64/uint64(c.Run.Dim) {
		return invalidf("run.dim", c.Run.Dim)
	}

	s := c.Sweep
	if !(s.Sparsity > 0 && s.Sparsity <= 100) {
		return invalidf("sweep.sparsity", s.Sparsity)
	}
	if s.MaxDimExp > MaxSweepDimExp {
		return fmt.Errorf("Config.Validate: sweep.max_dim_exp=%d: %w", s.MaxDimExp, ErrExponent)
	}
	if _, err := Exponents(s.MinDimExp, s.MaxDimExp); err != nil {
		return fmt.Errorf("Config.Validate: sweep dims: %w", err)
	}
	if _, err := Exponents(s.MinSearchExp, s.MaxSearchExp); err != nil {
		return fmt.Errorf("Config.Validate: sweep searches: %w", err)
	}
	if _, err := occupancy.ParseKind(s.Index); err != nil {
		return fmt.Errorf("Config.Validate: sweep.index: %w", err)
	}
	if s.Out == "" {
		return invalidf("sweep.out", s.Out)
	}

	return nil
}

func invalidf(key string, v any) error {
	return fmt.Errorf("Config.Validate: %s=%v: %w", key, v, ErrInvalid)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("Config: log_level=%q: %w", c.LogLevel, ErrInvalid)
	}
	return lvl, nil
}

// Kinds resolves Index into occupancy kinds.
func (c Config) Kinds() ([]occupancy.Kind, error) {
	return occupancy.ParseKinds(c.Index)
}

// RunParams converts the run section into harness parameters.
func (c Config) RunParams() (harness.RunParams, error) {
	if err := c.Validate(); err != nil {
		return harness.RunParams{}, err
	}
	kinds, _ := c.Kinds()

	return harness.RunParams{
		Rows:       c.Run.Dim,
		Cols:       c.Run.Dim,
		Values:     c.Run.Values,
		Searches:   c.Run.Searches,
		Kinds:      kinds,
		PayloadLen: c.PayloadLen,
	}, nil
}

// SweepParams converts the sweep section into harness parameters.
func (c Config) SweepParams() (harness.SweepParams, error) {
	if err := c.Validate(); err != nil {
		return harness.SweepParams{}, err
	}
	dims, _ := Exponents(c.Sweep.MinDimExp, c.Sweep.MaxDimExp)
	searches, _ := Exponents(c.Sweep.MinSearchExp, c.Sweep.MaxSearchExp)
	kind, _ := occupancy.ParseKind(c.Sweep.Index)

	return harness.SweepParams{
		Dims:       dims,
		Searches:   searches,
		Sparsity:   c.Sweep.Sparsity,
		Kind:       kind,
		PayloadLen: c.PayloadLen,
	}, nil
}
