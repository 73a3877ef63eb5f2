package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"tspga/internal/config"
	"tspga/internal/logging"
	"tspga/internal/tour"
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
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	configPath := fs.String("config", "", "config the champion was trained on (built-in reference problem when empty)")
	championPath := fs.String("champion", "artifacts/champion.json", "path to champion JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	dist, err := cfg.DistanceMatrix()
	if err != nil {
		return fmt.Errorf("building distances: %w", err)
	}

	champion, err := logging.LoadChampion(*championPath)
	if err != nil {
		return fmt.Errorf("loading champion: %w", err)
	}
	best := tour.Tour(champion.Tour)
	if err := best.Validate(dist.Size()); err != nil {
		return fmt.Errorf("champion does not fit %d locations: %w", dist.Size(), err)
	}

	fmt.Fprintf(stdout, "Loaded champion from gen %d (length=%g)\n", champion.Generation, champion.Length)
	fmt.Fprintf(stdout, "Route: %s\n", best)
	fmt.Fprintln(stdout)

	width := 4
	for i := 0; i < dist.Size(); i++ {
		if n := len(dist.Name(i)); n > width {
			width = n
		}
	}
	fmt.Fprintf(stdout, "%4s  %-*s  %-*s  %10s  %10s\n", "Leg", width, "From", width, "To", "Distance", "Total")
	fmt.Fprintln(stdout, strings.Repeat("─", 4+2+width+2+width+2+10+2+10))

	legs := dist.Legs(best)
	for i, leg := range legs {
		fmt.Fprintf(stdout, "%4d  %-*s  %-*s  %10.2f  %10.2f\n",
			i+1, width, dist.Name(leg.From), width, dist.Name(leg.To), leg.Cost, leg.Total)
	}

	total := legs[len(legs)-1].Total
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Total length: %g\n", total)
	if math.Abs(total-champion.Length) > 1e-9*math.Max(1, total) {
		fmt.Fprintf(stdout, "Warning: saved length %g does not match this problem\n", champion.Length)
	}
	return nil
}
