package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/ward-sim/ward-sim/sim"
)

var (
	// CLI flags for the ward scenario
	logLevel       string  // Log verbosity level
	configPath     string  // Optional YAML scenario file; overrides the flags below when set
	arrivalRate    float64 // Patient arrivals per day
	bedCapacity    int     // Number of beds in the ward
	seniorCapacity int     // Senior staff headcount
	juniorCapacity int     // Junior staff headcount
	seniorRate     float64 // Ideal senior service rate (patients per day)
	juniorRate     float64 // Ideal junior service rate (patients per day)
	workloadAlpha  float64 // Workload scale factor for the workload-dependent scenario
	scenario       string  // Rate policy: homogeneous, heterogeneous, workload
	horizon        float64 // Simulated duration in days
	seed           int64   // Seed for deterministic replay
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ward-sim",
	Short: "Discrete-event simulator for hospital ward patient flow",
}

// runCmd executes one simulation using parameters from CLI flags or a
// YAML scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ward simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			ArrivalRate:    arrivalRate,
			BedCapacity:    bedCapacity,
			SeniorCapacity: seniorCapacity,
			JuniorCapacity: juniorCapacity,
			SeniorRate:     seniorRate,
			JuniorRate:     juniorRate,
			WorkloadAlpha:  workloadAlpha,
			Scenario:       scenario,
			Horizon:        horizon,
			Seed:           seed,
		}
		if configPath != "" {
			loaded, err := sim.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario config: %v", err)
			}
			cfg = *loaded
		}

		logrus.Infof("Starting simulation: %d beds, %d senior + %d junior staff, scenario=%s, horizon=%.2f days, seed=%d",
			cfg.BedCapacity, cfg.SeniorCapacity, cfg.JuniorCapacity, cfg.Scenario, cfg.Horizon, cfg.Seed)

		result, err := sim.RunScenario(cfg)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}
		result.Summary.Print()
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
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file (overrides the flags below)")

	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 6.0, "Patient arrivals per day")
	runCmd.Flags().IntVar(&bedCapacity, "beds", 20, "Number of beds in the ward")
	runCmd.Flags().IntVar(&seniorCapacity, "senior-staff", 7, "Senior staff headcount")
	runCmd.Flags().IntVar(&juniorCapacity, "junior-staff", 8, "Junior staff headcount")
	runCmd.Flags().Float64Var(&seniorRate, "senior-rate", 1.0/2.5, "Ideal senior service rate (patients per day)")
	runCmd.Flags().Float64Var(&juniorRate, "junior-rate", 1.0/3.5, "Ideal junior service rate (patients per day)")
	runCmd.Flags().Float64Var(&workloadAlpha, "alpha", 1.0, "Workload scale factor")
	runCmd.Flags().StringVar(&scenario, "scenario", sim.ScenarioWorkloadDependent, "Rate policy (homogeneous, heterogeneous, workload)")
	runCmd.Flags().Float64Var(&horizon, "horizon", 7.0, "Simulated duration in days")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic replay")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
