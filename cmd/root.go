package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/shelfsim/shelfsim/sim"
	"github.com/shelfsim/shelfsim/sim/trace"
)

var (
	// CLI flags for the run
	seed           int64  // Seed for all random draws of a run
	numTicks       int64  // Number of ticks to simulate
	reportInterval int64  // Analytics snapshot interval (in ticks)
	logLevel       string // Log verbosity level
	chartsDir      string // Directory for HTML chart output ("" = no charts)

	// CLI flags for the inventory system configuration
	numShelves          int     // Number of shelves in the circular arrangement
	shelfCapacity       int     // Max items per shelf
	totalItems          int     // Total items in the system
	hiddenShelf         int     // Shelf the observer never inspects
	movementProbability float64 // Per-item move probability per tick
	mode                string  // Hidden shelf mode (normal or leak_then_trap)
	trapStartTick       int64   // Trap activation tick in leak_then_trap mode
	processNoiseQ       float64 // Kalman filter process noise

	// Scenario preset flags
	scenarioName      string // Named preset from the scenarios file
	scenariosFilePath string // Path to the scenarios YAML file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "shelfsim",
	Short: "Closed-inventory shelf simulator with partial-observability Kalman estimation",
}

// buildConfig assembles the simulation configuration from a scenario preset
// (if requested) and CLI flags. Explicitly set flags override preset values.
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	config := sim.Config{
		NumShelves:          numShelves,
		ShelfCapacity:       shelfCapacity,
		TotalItems:          totalItems,
		HiddenShelf:         hiddenShelf,
		MovementProbability: movementProbability,
		Mode:                mode,
		TrapStartTick:       trapStartTick,
		ProcessNoiseQ:       processNoiseQ,
	}

	if scenarioName == "" {
		return config, nil
	}

	scenarios, err := loadScenarios(scenariosFilePath)
	if err != nil {
		return sim.Config{}, err
	}
	scenario, ok := scenarios.Scenarios[scenarioName]
	if !ok {
		return sim.Config{}, fmt.Errorf("unknown scenario %q in %s", scenarioName, scenariosFilePath)
	}

	preset := scenario.toConfig()
	// Flags the user explicitly set win over the preset.
	if !cmd.Flags().Changed("num-shelves") {
		config.NumShelves = preset.NumShelves
	}
	if !cmd.Flags().Changed("shelf-capacity") {
		config.ShelfCapacity = preset.ShelfCapacity
	}
	if !cmd.Flags().Changed("total-items") {
		config.TotalItems = preset.TotalItems
	}
	if !cmd.Flags().Changed("hidden-shelf") {
		config.HiddenShelf = preset.HiddenShelf
	}
	if !cmd.Flags().Changed("movement-probability") {
		config.MovementProbability = preset.MovementProbability
	}
	if !cmd.Flags().Changed("mode") {
		config.Mode = preset.Mode
	}
	if !cmd.Flags().Changed("trap-start-tick") {
		config.TrapStartTick = preset.TrapStartTick
	}
	if !cmd.Flags().Changed("process-noise-q") {
		config.ProcessNoiseQ = preset.ProcessNoiseQ
	}
	return config, nil
}

// runCmd executes a simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the inventory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if numTicks <= 0 {
			logrus.Fatalf("ticks must be positive, got %d", numTicks)
		}
		if reportInterval <= 0 {
			logrus.Fatalf("report-interval must be positive, got %d", reportInterval)
		}

		config, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Could not assemble configuration: %v", err)
		}
		if err := config.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %d shelves, %d items, capacity %d, p=%v, mode=%s, seed=%d",
			config.NumShelves, config.TotalItems, config.ShelfCapacity,
			config.MovementProbability, config.Mode, seed)

		runner := sim.NewRunner(config, seed)
		results := runner.Run(numTicks, reportInterval)

		results.PrintSummary()

		summary := trace.Summarize(results.Trace)
		fmt.Printf("Idle Ticks            : %d of %d\n", summary.IdleTicks, summary.Ticks)
		fmt.Printf("Shelves Observed      : %d\n", summary.UniqueShelvesObserved)

		if chartsDir != "" {
			if err := WriteCharts(results, chartsDir); err != nil {
				logrus.Fatalf("Could not write charts: %v", err)
			}
			logrus.Infof("Charts written to %s", chartsDir)
		}

		logrus.Info("Simulation complete.")
	},
}

// scenariosCmd lists the presets available in the scenarios file
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenario presets available in the scenarios file",
	Run: func(cmd *cobra.Command, args []string) {
		scenarios, err := loadScenarios(scenariosFilePath)
		if err != nil {
			logrus.Fatalf("Could not load scenarios: %v", err)
		}
		for name, s := range scenarios.Scenarios {
			fmt.Printf("%-16s %s\n", name, s.Description)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws of the run")
	runCmd.Flags().Int64Var(&numTicks, "ticks", 5000, "Number of ticks to simulate")
	runCmd.Flags().Int64Var(&reportInterval, "report-interval", 100, "Analytics snapshot interval (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory for HTML chart output (empty disables charts)")

	// Inventory system configs
	runCmd.Flags().IntVar(&numShelves, "num-shelves", 20, "Number of shelves in the circular arrangement")
	runCmd.Flags().IntVar(&shelfCapacity, "shelf-capacity", 50, "Maximum number of items per shelf")
	runCmd.Flags().IntVar(&totalItems, "total-items", 300, "Total number of items in the system")
	runCmd.Flags().IntVar(&hiddenShelf, "hidden-shelf", 0, "Shelf the observer never inspects")
	runCmd.Flags().Float64Var(&movementProbability, "movement-probability", 0.01, "Per-item move probability per tick")
	runCmd.Flags().StringVar(&mode, "mode", sim.ModeNormal, "Hidden shelf mode (normal or leak_then_trap)")
	runCmd.Flags().Int64Var(&trapStartTick, "trap-start-tick", 150, "Tick at which the trap activates in leak_then_trap mode")
	runCmd.Flags().Float64Var(&processNoiseQ, "process-noise-q", 0.1, "Kalman filter process noise")

	// Scenario presets
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset (see the scenarios subcommand)")
	runCmd.Flags().StringVar(&scenariosFilePath, "scenarios-filepath", "scenarios.yaml", "Path to scenarios.yaml")
	scenariosCmd.Flags().StringVar(&scenariosFilePath, "scenarios-filepath", "scenarios.yaml", "Path to scenarios.yaml")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}
