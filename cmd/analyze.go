package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ward-sim/ward-sim/sim/analytic"
)

var (
	anArrivalRate float64 // Arrivals per day
	anServiceRate float64 // Per-server service rate (patients per day)
	anServers     int     // Staff headcount c
	anCapacity    int     // System capacity K (beds)
)

// analyzeCmd prints closed-form steady-state metrics for an M/M/c/K ward,
// a quick theoretical cross-check against simulated KPIs.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print steady-state M/M/c/K metrics for a ward configuration",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := analytic.Compute(anArrivalRate, anServiceRate, anServers, anCapacity)
		if err != nil {
			logrus.Fatalf("invalid parameters: %v", err)
		}
		fmt.Println("=== M/M/c/K Steady State ===")
		fmt.Printf("Traffic intensity (rho) : %.4f\n", m.Rho)
		fmt.Printf("Mean queue length Lq    : %.4f patients\n", m.MeanQueueLen)
		fmt.Printf("Mean system length Ls   : %.4f patients\n", m.MeanSystemLen)
		fmt.Printf("Mean queue wait Wq      : %.4f days\n", m.MeanQueueWait)
		fmt.Printf("Mean system wait Ws     : %.4f days\n", m.MeanSystemWait)
		fmt.Printf("Blocking probability    : %.4f\n", m.BlockingProb)
		fmt.Printf("Server utilization      : %.2f%%\n", m.Utilization*100)
	},
}

func init() {
	analyzeCmd.Flags().Float64Var(&anArrivalRate, "arrival-rate", 6.0, "Patient arrivals per day")
	analyzeCmd.Flags().Float64Var(&anServiceRate, "service-rate", 1.0/2.5, "Per-server service rate (patients per day)")
	analyzeCmd.Flags().IntVar(&anServers, "servers", 15, "Staff headcount (servers)")
	analyzeCmd.Flags().IntVar(&anCapacity, "capacity", 20, "System capacity K (beds)")

	rootCmd.AddCommand(analyzeCmd)
}
