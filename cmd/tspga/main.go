package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"tspga/internal/config"
	"tspga/internal/ga"
	"tspga/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tspga", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file (built-in reference problem when empty)")
	envFile := fs.String("env", ".env", "dotenv file with TSPGA_* overrides")
	generations := fs.Int("generations", 0, "number of generations to run")
	population := fs.Int("population", 0, "population size")
	mutationRate := fs.Float64("mutation-rate", 0, "per-position swap probability")
	elites := fs.Int("elites", 0, "best tours copied unchanged into each new generation")
	seed := fs.Int64("seed", 0, "random seed")
	workers := fs.Int("workers", 0, "parallel fitness workers (0 = one per CPU)")
	reportPath := fs.String("report", "", "write an XLSX report to this path")
	championPath := fs.String("champion", "", "save the best tour as JSON to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyEnv(*envFile); err != nil {
		return fmt.Errorf("applying environment: %w", err)
	}

	// explicit flags win over file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "generations":
			cfg.GA.Generations = *generations
		case "population":
			cfg.GA.Population = *population
		case "mutation-rate":
			cfg.GA.MutationRate = *mutationRate
		case "elites":
			cfg.GA.Elites = *elites
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Eval.Workers = *workers
		case "report":
			cfg.Logging.ReportPath = *reportPath
		case "champion":
			cfg.Logging.ChampionPath = *championPath
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	dist, err := cfg.DistanceMatrix()
	if err != nil {
		return err
	}
	params := cfg.Params()

	fmt.Fprintf(stdout, "TSP GA - %d locations\n", dist.Size())
	if *configPath != "" {
		fmt.Fprintf(stdout, "Config: %s\n", *configPath)
	}
	fmt.Fprintf(stdout, "Population: %d, Generations: %d, Mutation rate: %g, Elites: %d, Seed: %d\n",
		params.Population, params.Generations, params.MutationRate, params.Elites, cfg.Seed)
	fmt.Fprintln(stdout, "---")

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger.SetConsole(stdout, cfg.Logging.ReportEvery)

	rng := rand.New(rand.NewSource(cfg.Seed))
	engine, err := ga.NewEngine(dist, params, rng, ga.WithObserver(logger.Observer(params.Generations)))
	if err != nil {
		logger.Close()
		return err
	}

	startTime := time.Now()
	res, err := engine.Run()
	if cerr := logger.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("writing logs: %w", cerr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "---")
	fmt.Fprintf(stdout, "Done! %d generations in %v\n", res.Generations, time.Since(startTime))
	fmt.Fprintf(stdout, "Best route: %s length %g\n", res.Best, res.Length)

	if cfg.Logging.ChampionPath != "" {
		if err := logging.SaveChampion(cfg.Logging.ChampionPath, res.Best, res.Length, res.Generations); err != nil {
			return fmt.Errorf("saving champion: %w", err)
		}
		fmt.Fprintf(stdout, "Champion saved to %s\n", cfg.Logging.ChampionPath)
	}
	if cfg.Logging.ReportPath != "" {
		if err := logging.WriteReport(cfg.Logging.ReportPath, res, dist); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(stdout, "Report saved to %s\n", cfg.Logging.ReportPath)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
