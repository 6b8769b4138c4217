// Command benchrun runs the planner against a directory of text-format
// instances and records timing and outcome metrics to CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/elektrokombinacija/warehouse-mapf/internal/filler"
	"github.com/elektrokombinacija/warehouse-mapf/internal/ioformat"
	"github.com/elektrokombinacija/warehouse-mapf/internal/orchestrator"
	"github.com/elektrokombinacija/warehouse-mapf/internal/reservation"
)

// result captures one instance's outcome, mirroring the teacher's
// BenchmarkResult row shape but scoped to this repo's single planner.
type result struct {
	instance  string
	goVersion string
	os        string
	arch      string
	numRobots int
	numTasks  int
	gridSize  string
	runtimeMs float64
	success   bool
	makespan  int
	evaded    bool
}

func main() {
	inputDir := flag.String("input", "testdata", "directory containing instance .txt files")
	outputFile := flag.String("output", "evidence/benchrun_results.csv", "output CSV path")
	seed := flag.Int64("seed", 1, "seed for the idle-walk filler's RNG")
	verbose := flag.Bool("verbose", false, "print one line per instance as it runs")
	flag.Parse()

	if err := run(*inputDir, *outputFile, *seed, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inputDir, outputFile string, seed int64, verbose bool) error {
	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		return fmt.Errorf("benchrun: creating output directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.txt"))
	if err != nil {
		return fmt.Errorf("benchrun: globbing instances: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("benchrun: no instance files found in %s (run geninstance first)", inputDir)
	}
	sort.Strings(files)

	logger := zap.NewNop()

	results := make([]result, 0, len(files))
	for _, path := range files {
		r := runOne(path, seed, logger)
		if verbose {
			fmt.Printf("%-30s success=%-5t makespan=%-4d %.3fms\n", r.instance, r.success, r.makespan, r.runtimeMs)
		}
		results = append(results, r)
	}

	if err := writeCSV(results, outputFile); err != nil {
		return fmt.Errorf("benchrun: writing CSV: %w", err)
	}
	printSummary(results)
	return nil
}

func runOne(path string, seed int64, logger *zap.Logger) result {
	name := filepath.Base(path)
	r := result{instance: name, goVersion: runtime.Version(), os: runtime.GOOS, arch: runtime.GOARCH}

	in, err := os.Open(path)
	if err != nil {
		return r
	}
	defer in.Close()

	inst, err := ioformat.ParseInstance(in)
	if err != nil {
		return r
	}
	r.numRobots = len(inst.Robots)
	r.numTasks = len(inst.Deliveries)
	r.gridSize = fmt.Sprintf("%dx%d", inst.Grid.Width, inst.Grid.Height)

	table := reservation.New()
	start := time.Now()
	planErr := orchestrator.Run(inst, table, logger)
	r.runtimeMs = float64(time.Since(start).Microseconds()) / 1000.0

	if planErr != nil {
		r.success = false
		return r
	}
	r.success = true

	rng := filler.NewRNG(seed)
	r.evaded = filler.Fill(inst, table, rng) == nil

	for _, robot := range inst.Robots {
		if len(robot.MoveString) > r.makespan {
			r.makespan = len(robot.MoveString)
		}
	}
	return r
}

func writeCSV(results []result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"instance", "go_version", "os", "arch",
		"num_robots", "num_tasks", "grid_size",
		"runtime_ms", "success", "makespan", "evaded",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.instance, r.goVersion, r.os, r.arch,
			fmt.Sprintf("%d", r.numRobots), fmt.Sprintf("%d", r.numTasks), r.gridSize,
			fmt.Sprintf("%.3f", r.runtimeMs), fmt.Sprintf("%t", r.success),
			fmt.Sprintf("%d", r.makespan), fmt.Sprintf("%t", r.evaded),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []result) {
	successes := 0
	var totalRuntime float64
	for _, r := range results {
		if r.success {
			successes++
			totalRuntime += r.runtimeMs
		}
	}
	avg := 0.0
	if successes > 0 {
		avg = totalRuntime / float64(successes)
	}
	fmt.Println("\n=== BENCHRUN SUMMARY ===")
	fmt.Printf("instances: %d  solved: %d  avg runtime: %.2fms\n", len(results), successes, avg)
}
