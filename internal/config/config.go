package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"tspga/internal/distance"
	"tspga/internal/ga"
)

// ErrInvalidConfig is wrapped by every validation and override error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	Problem ProblemConfig `yaml:"problem"`
	GA      GAConfig      `yaml:"ga"`
	Eval    EvalConfig    `yaml:"eval"`
	Logging LogConfig     `yaml:"logging"`
}

// ProblemConfig holds the instance. Exactly one of Distances or Locations
// must be set.
type ProblemConfig struct {
	Distances [][]float64      `yaml:"distances"`
	Locations []distance.Point `yaml:"locations" validate:"omitempty,dive"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population   int     `yaml:"population" validate:"gte=2"`
	MutationRate float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	Generations  int     `yaml:"generations" validate:"gte=1"`
	Elites       int     `yaml:"elites" validate:"gte=0"`
	CheckTours   bool    `yaml:"check_tours"`
}

// EvalConfig defines evaluation parameters
type EvalConfig struct {
	Workers int `yaml:"workers" validate:"gte=0"` // 0 = one per CPU
}

// LogConfig defines logging parameters. Empty paths disable that output.
type LogConfig struct {
	ReportEvery  int    `yaml:"report_every" validate:"gte=0"`
	CSVPath      string `yaml:"csv_path"`
	JSONPath     string `yaml:"json_path"`
	ChampionPath string `yaml:"champion_path"`
	ReportPath   string `yaml:"report_path"`
}

// Default returns the built-in configuration: the five-city reference
// table solved with the classic parameters.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and returns a Config with defaults applied.
// Unknown keys are rejected. The result is not validated; callers apply
// overrides first and then call Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if len(cfg.Problem.Distances) == 0 && len(cfg.Problem.Locations) == 0 {
		cfg.Problem.Distances = distance.ReferenceTable()
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 4
	}
	if cfg.GA.MutationRate == 0 {
		cfg.GA.MutationRate = 0.01
	}
	if cfg.GA.Generations == 0 {
		cfg.GA.Generations = 100
	}
	if cfg.Eval.Workers == 0 {
		cfg.Eval.Workers = 1
	}
	if cfg.Logging.ReportEvery == 0 {
		cfg.Logging.ReportEvery = 10
	}
}

// DistanceMatrix builds the distance model from whichever problem source is set.
func (c *Config) DistanceMatrix() (*distance.Matrix, error) {
	if len(c.Problem.Locations) > 0 {
		return distance.FromPoints(c.Problem.Locations)
	}
	return distance.New(c.Problem.Distances)
}

// Params converts the GA section into engine parameters.
func (c *Config) Params() ga.Params {
	return ga.Params{
		Population:   c.GA.Population,
		MutationRate: c.GA.MutationRate,
		Generations:  c.GA.Generations,
		Elites:       c.GA.Elites,
		Workers:      c.Eval.Workers,
		CheckTours:   c.GA.CheckTours,
	}
}

// NumLocations returns the instance size without building the matrix.
func (c *Config) NumLocations() int {
	if len(c.Problem.Locations) > 0 {
		return len(c.Problem.Locations)
	}
	return len(c.Problem.Distances)
}
