package sim

import "github.com/sirupsen/logrus"

// Result bundles the two output artifacts of a run and the KPI summary
// derived from them. The reporting layer consumes these; the engine does
// not retain them between runs.
type Result struct {
	Patients  []PatientRecord
	Occupancy []OccupancySample
	Summary   *Summary
}

// RunScenario validates cfg, builds a fresh run context, and executes the
// simulation to its horizon. Every call creates its own Simulator, ward,
// and random streams, so scenarios can run back to back (or concurrently
// from separate goroutines) without sharing state.
func RunScenario(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sim := NewSimulator(cfg.Horizon, cfg.Seed)
	stats := NewStatisticsCollector()
	ward := NewWardModel(cfg, stats)
	ward.Start(sim)
	sim.Run()
	ward.Finalize()

	summary := stats.Summarize(cfg.Horizon, cfg.BedCapacity)
	logrus.Infof("run complete: %d arrivals, %d discharged, %d balked, %d censored",
		summary.TotalArrivals, summary.Discharged, summary.Balked, summary.Censored)
	return &Result{Patients: stats.Patients, Occupancy: stats.Occupancy, Summary: summary}, nil
}
