package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// Environment variables that override the file configuration.
const (
	EnvSeed         = "TSPGA_SEED"
	EnvGenerations  = "TSPGA_GENERATIONS"
	EnvPopulation   = "TSPGA_POPULATION"
	EnvMutationRate = "TSPGA_MUTATION_RATE"
	EnvWorkers      = "TSPGA_WORKERS"
)

// ApplyEnv loads the given dotenv files (".env" when none are named),
// skipping missing ones, and then applies any TSPGA_* variables on top of
// the config. Variables already set in the process win over dotenv values.
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	var errs error
	errs = multierr.Append(errs, envInt64(EnvSeed, &c.Seed))
	errs = multierr.Append(errs, envInt(EnvGenerations, &c.GA.Generations))
	errs = multierr.Append(errs, envInt(EnvPopulation, &c.GA.Population))
	errs = multierr.Append(errs, envFloat(EnvMutationRate, &c.GA.MutationRate))
	errs = multierr.Append(errs, envInt(EnvWorkers, &c.Eval.Workers))
	return errs
}

func envInt64(key string, dst *int64) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, s, err)
	}
	*dst = v
	return nil
}

func envInt(key string, dst *int) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, s, err)
	}
	*dst = v
	return nil
}

func envFloat(key string, dst *float64) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, s, err)
	}
	*dst = v
	return nil
}
