package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/interrupt-sim/interrupt-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed        int64   // Seed for random arrival and duration draws
	totalTicks  int64   // Total simulation horizon (in ticks)
	probability float64 // Per-device per-tick interrupt probability
	serviceMin  int64   // Minimum interrupt service duration (ticks)
	serviceMax  int64   // Maximum interrupt service duration (ticks)
	logLevel    string  // Log verbosity level
	devicesPath string  // Optional YAML device registry file
	reportPath  string  // Output path for the text report ("" disables)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "interrupt-sim",
	Short: "Discrete-time simulator of interrupt-driven I/O management",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interrupt simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		registry := sim.DefaultRegistry()
		if devicesPath != "" {
			registry, err = sim.LoadRegistry(devicesPath)
			if err != nil {
				logrus.Fatalf("Unable to load device registry: %v", err)
			}
		}

		cfg := sim.NewSimulationConfig(totalTicks, seed, probability, serviceMin, serviceMax)

		logrus.Infof("Starting simulation: %d devices, horizon=%d ticks, p=%.2f, service=[%d,%d]",
			registry.Len(), cfg.Horizon, cfg.Probability, cfg.ServiceMin, cfg.ServiceMax)

		startTime := time.Now()

		s, err := sim.NewSimulator(cfg, registry)
		if err != nil {
			logrus.Fatalf("Unable to build simulator: %v", err)
		}
		s.Run()
		s.Metrics.Print()

		if reportPath != "" {
			if err := WriteReport(reportPath, cfg, registry, s.Trace, s.Metrics, startTime); err != nil {
				// A failed report write does not invalidate the run itself.
				logrus.Errorf("Report not written: %v", err)
			} else {
				logrus.Infof("Report written to %s", reportPath)
			}
		}

		logrus.Info("Simulation complete.")
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
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random arrival and duration draws")
	runCmd.Flags().Int64Var(&totalTicks, "ticks", 50, "Total simulation horizon (in ticks)")
	runCmd.Flags().Float64Var(&probability, "prob", 0.25, "Per-device per-tick interrupt probability")
	runCmd.Flags().Int64Var(&serviceMin, "service-min", 2, "Minimum interrupt service duration (ticks)")
	runCmd.Flags().Int64Var(&serviceMax, "service-max", 4, "Maximum interrupt service duration (ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&devicesPath, "devices", "", "YAML device registry file (default: built-in Teclado/Impressora/Disco)")
	runCmd.Flags().StringVar(&reportPath, "out", "log_simulacao.txt", "Output path for the text report (empty disables)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
