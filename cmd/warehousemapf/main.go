// Command warehousemapf runs the space-time delivery planner end to end:
// parse an instance, plan every delivery, fill trailing idle time, and
// write the time-major move schedule.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/warehouse-mapf/internal/filler"
	"github.com/elektrokombinacija/warehouse-mapf/internal/ioformat"
	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
	"github.com/elektrokombinacija/warehouse-mapf/internal/orchestrator"
	"github.com/elektrokombinacija/warehouse-mapf/internal/planner"
	"github.com/elektrokombinacija/warehouse-mapf/internal/reservation"
)

func main() {
	app := &cli.App{
		Name:      "warehousemapf",
		Usage:     "plan collision-free warehouse robot deliveries",
		ArgsUsage: "<input_file> <output_file>",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for the idle-walk filler's RNG",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "max-time-factor",
				Usage: "multiplier on Manhattan distance bounding A* search depth",
				Value: planner.HeuristicFactor,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log the parsed instance before planning",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: warehousemapf <input_file> <output_file>", 1)
	}
	inputPath := c.Args().Get(0)
	outputPath := c.Args().Get(1)

	logger, err := zap.NewProduction()
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot initialize logger: %v", err), 1)
	}
	defer logger.Sync() //nolint:errcheck

	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Printf("Cannot open the file: %s\n", inputPath)
		return cli.Exit("", 1)
	}
	defer in.Close()

	inst, err := ioformat.ParseInstance(in)
	if err != nil {
		fmt.Println(err)
		return cli.Exit("", 1)
	}

	if c.Bool("verbose") {
		logger.Info("parsed instance", zap.String("dump", inst.String()))
	}

	table := reservation.New()
	factor := c.Int("max-time-factor")

	if err := orchestrator.RunWithFactor(inst, table, logger, factor); err != nil {
		if errors.Is(err, orchestrator.ErrNoSolution) || errors.Is(err, orchestrator.ErrNoChargers) {
			fmt.Println("No solution")
			return nil
		}
		fmt.Println(err)
		return cli.Exit("", 1)
	}

	rng := filler.NewRNG(c.Int64("seed"))
	if err := filler.Fill(inst, table, rng); err != nil {
		fmt.Println("Not all robots could evade")
		return nil
	}

	return writeOutput(outputPath, inst)
}

func writeOutput(outputPath string, inst *model.Instance) error {
	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Printf("Cannot open the file: %s\n", outputPath)
		return cli.Exit("", 1)
	}
	defer out.Close()

	if err := ioformat.WriteOutput(out, inst); err != nil {
		fmt.Println(err)
		return cli.Exit("", 1)
	}
	return nil
}
