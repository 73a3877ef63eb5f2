package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"

	"tspga/internal/eval"
	"tspga/internal/ga"
	"tspga/internal/tour"
)

// Logger handles all run output: console progress, a per-generation CSV
// file, and a JSON-lines file. An empty path disables that file.
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	console     io.Writer
	reportEvery int
	initialized bool
	err         error
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	// Ensure directories exist
	for _, p := range []string{csvPath, jsonPath} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// SetConsole prints a progress line to w every `every` generations and on
// the last one. every <= 0 or a nil writer turns console output off.
func (l *Logger) SetConsole(w io.Writer, every int) {
	l.console = w
	l.reportEvery = every
}

// Init opens the log files
func (l *Logger) Init() error {
	var err error

	if l.csvPath != "" {
		l.csvFile, err = os.Create(l.csvPath)
		if err != nil {
			return err
		}
		l.csvWriter = csv.NewWriter(l.csvFile)

		header := []string{"generation", "best", "mean", "worst", "std", "best_tour"}
		if err := l.csvWriter.Write(header); err != nil {
			return err
		}
	}

	if l.jsonPath != "" {
		l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files. It returns the first write error
// seen by Observer along with any close errors.
func (l *Logger) Close() error {
	err := l.err
	if l.csvWriter != nil {
		l.csvWriter.Flush()
		err = multierr.Append(err, l.csvWriter.Error())
	}
	if l.csvFile != nil {
		err = multierr.Append(err, l.csvFile.Close())
	}
	if l.jsonFile != nil {
		err = multierr.Append(err, l.jsonFile.Close())
	}
	return err
}

// GenerationSummary is one JSON line of the run log.
type GenerationSummary struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Mean       float64 `json:"mean"`
	Worst      float64 `json:"worst"`
	Std        float64 `json:"std"`
	BestRoute  []int   `json:"best_route"` // 1-based
}

// LogGeneration records one evaluated generation.
func (l *Logger) LogGeneration(stats eval.Stats, best tour.Tour) error {
	if !l.initialized {
		return nil
	}

	summary := GenerationSummary{
		Generation: stats.Generation,
		Best:       stats.Best,
		Mean:       stats.Mean,
		Worst:      stats.Worst,
		Std:        stats.Std,
		BestRoute:  best.Cities(),
	}

	if l.csvWriter != nil {
		row := []string{
			strconv.Itoa(summary.Generation),
			formatFloat(summary.Best),
			formatFloat(summary.Mean),
			formatFloat(summary.Worst),
			formatFloat(summary.Std),
			best.String(),
		}
		if err := l.csvWriter.Write(row); err != nil {
			return err
		}
		l.csvWriter.Flush()
		if err := l.csvWriter.Error(); err != nil {
			return err
		}
	}

	if l.jsonFile != nil {
		line, err := json.Marshal(summary)
		if err != nil {
			return err
		}
		if _, err := l.jsonFile.Write(append(line, '\n')); err != nil {
			return err
		}
	}

	return nil
}

// Report prints a progress line when gen is due.
func (l *Logger) Report(stats eval.Stats, best tour.Tour, last bool) {
	if l.console == nil || l.reportEvery <= 0 {
		return
	}
	if stats.Generation%l.reportEvery != 0 && !last {
		return
	}
	fmt.Fprintf(l.console, "Gen %4d | Best: %8.2f | Mean: %8.2f | Worst: %8.2f | Route: %s\n",
		stats.Generation, stats.Best, stats.Mean, stats.Worst, best)
}

// Observer adapts the logger to the engine. Write errors are kept and
// returned by Close.
func (l *Logger) Observer(generations int) ga.Observer {
	return func(gen int, pop *ga.Population, stats eval.Stats) {
		best := pop.Agents[stats.BestIndex].Tour
		if err := l.LogGeneration(stats, best); err != nil && l.err == nil {
			l.err = fmt.Errorf("log generation %d: %w", gen, err)
		}
		l.Report(stats, best, gen == generations)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Champion is the saved best tour of a run.
type Champion struct {
	Generation int     `json:"generation"`
	Length     float64 `json:"length"`
	Tour       []int   `json:"tour"`   // 0-based
	Cities     []int   `json:"cities"` // 1-based
}

// SaveChampion saves the winning tour to a JSON file
func SaveChampion(path string, best tour.Tour, length float64, gen int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := Champion{
		Generation: gen,
		Length:     length,
		Tour:       best.Clone(),
		Cities:     best.Cities(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadChampion loads a champion tour from a file
func LoadChampion(path string) (*Champion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var saved Champion
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse champion %s: %w", path, err)
	}
	if err := tour.Tour(saved.Tour).Validate(len(saved.Tour)); err != nil {
		return nil, fmt.Errorf("champion %s: %w", path, err)
	}

	return &saved, nil
}
