package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/simweave/simweave"
	"github.com/simweave/simweave/engine"
	"github.com/simweave/simweave/report"
	"github.com/simweave/simweave/report/sqlite"
	"github.com/simweave/simweave/tabular"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a random-walk demo scenario",
		Long: `Run steps a population of random-walk agents through the yearly cycle
and prints the collected reports. The population is either generated
(--agents) or loaded from a CSV file with name and wealth columns
(--population). Scenario parameters come from a YAML config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			populationPath, _ := cmd.Flags().GetString("population")
			agents, _ := cmd.Flags().GetInt("agents")
			steps, _ := cmd.Flags().GetInt("steps")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg := engine.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = engine.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if steps > 0 {
				cfg.Steps = steps
			}

			var sinks []report.Sink
			if cfg.ReportDB != "" {
				sink, err := sqlite.Open(cfg.ReportDB)
				if err != nil {
					return fmt.Errorf("open report db: %w", err)
				}
				defer sink.Close()
				sinks = append(sinks, sink)
			}

			sim := simweave.FromConfig(cfg, func(o *simweave.Options) {
				o.Sinks = sinks
			})

			walkers, err := buildWalkers(populationPath, agents)
			if err != nil {
				return err
			}
			if err := sim.Add(walkers); err != nil {
				return fmt.Errorf("add population: %w", err)
			}

			if err := sim.Run(cmd.Context(), cfg.Steps); err != nil {
				return fmt.Errorf("run scenario: %w", err)
			}

			return printReports(sim, jsonOut)
		},
	}

	cmd.Flags().String("config", "", "Scenario YAML file")
	cmd.Flags().String("population", "", "Population CSV file (name,wealth)")
	cmd.Flags().Int("agents", 10, "Number of generated agents when no population file is given")
	cmd.Flags().Int("steps", 0, "Override the number of steps from the config")

	return cmd
}

// buildWalkers loads the population from CSV when a path is given, otherwise
// generates n walkers with a starting wealth of 100.
func buildWalkers(path string, n int) ([]*Walker, error) {
	if path == "" {
		walkers := make([]*Walker, 0, n)
		for i := 0; i < n; i++ {
			w, err := NewWalker(fmt.Sprintf("walker-%d", i), 100)
			if err != nil {
				return nil, err
			}
			walkers = append(walkers, w)
		}
		return walkers, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open population: %w", err)
	}
	defer f.Close()

	schema, err := tabular.CompileSchema(walkerSchema)
	if err != nil {
		return nil, err
	}
	walkers, err := tabular.LoadCSV(f, schema, buildWalkerRow)
	if err != nil {
		return nil, fmt.Errorf("load population: %w", err)
	}
	return walkers, nil
}

func printReports(sim *simweave.Simulation, jsonOut bool) error {
	reports := sim.Reports()
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(reports)
	}

	ids := make([]string, 0, len(reports))
	for id := range reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		snapshots := reports[id]
		last := snapshots[len(snapshots)-1]["Walker"]
		fmt.Printf("%-20s years=%d wealth=%.1f\n", id, len(snapshots), last["wealth"])
	}
	return nil
}
