// Package sim provides the discrete-event simulation engine for ward-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: Event types that drive the simulation (Arrival, TreatmentEnd)
//   - simulator.go: the virtual clock and the event loop
//   - resource.go: capacity-limited pools with FIFO wait queues
//   - ward.go: the patient lifecycle built on top of the kernel
//
// # Architecture
//
// One Simulator is created per run and owns the clock, the pending-event
// heap, and the seeded random streams. The WardModel composes a bed pool,
// the typed staff pools, the balking admission policy, and a pluggable
// RatePolicy into patient processes; all outcomes flow into the
// StatisticsCollector, which holds the patient log and the occupancy step
// function and derives the KPI summary at the end of the run.
//
// Scheduling is single-threaded and cooperative: exactly one event executes
// at a time, and pool state mutates only inside the active event's turn.
// Events due at the same virtual instant fire in scheduling order, which
// together with a fixed seed makes runs fully deterministic.
//
// The analytic sub-package holds the closed-form M/M/c/K reference model;
// it has no dependency on the engine.
package sim
