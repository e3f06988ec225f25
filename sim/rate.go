package sim

import (
	"fmt"
	"math"
)

// Scenario names selecting the service-rate policy.
const (
	ScenarioHomogeneous       = "homogeneous"
	ScenarioHeterogeneous     = "heterogeneous"
	ScenarioWorkloadDependent = "workload"
)

// ValidScenarios is the set of recognized scenario names. Shared by
// Config.Validate and NewRatePolicy to avoid duplication.
var ValidScenarios = map[string]bool{
	ScenarioHomogeneous:       true,
	ScenarioHeterogeneous:     true,
	ScenarioWorkloadDependent: true,
}

// RatePolicy computes the effective service rate (patients per day) for a
// patient at the moment treatment begins. occupancy is the number of
// occupied beds at that instant, not at arrival. All three scenarios share
// the same admission/race/discharge skeleton; only this computation
// differs.
type RatePolicy interface {
	Rate(staff StaffType, occupancy int) float64
}

// HomogeneousRate treats every staff member at one shared ideal rate.
type HomogeneousRate struct {
	IdealRate float64
}

func (h *HomogeneousRate) Rate(StaffType, int) float64 {
	return h.IdealRate
}

// HeterogeneousRate gives each staff type its own ideal rate; the type
// that won the staffing race determines the rate.
type HeterogeneousRate struct {
	SeniorRate float64
	JuniorRate float64
}

func (h *HeterogeneousRate) Rate(staff StaffType, _ int) float64 {
	if staff == StaffJunior {
		return h.JuniorRate
	}
	return h.SeniorRate
}

// WorkloadDependentRate degrades the per-type ideal rate as occupancy
// rises relative to scaled staffing:
//
//	mu = mu_ideal * min(1, alpha*s/n)
//
// where n is current occupancy (clamped to 1 so an empty ward cannot
// divide by zero) and s is total staff headcount. The min clamp keeps the
// rate from ever exceeding the ideal. Non-finite results are treated as a
// zero rate rather than propagated into the log.
type WorkloadDependentRate struct {
	Ideal      HeterogeneousRate
	Alpha      float64
	TotalStaff int
}

func (w *WorkloadDependentRate) Rate(staff StaffType, occupancy int) float64 {
	n := max(occupancy, 1)
	factor := math.Min(1, w.Alpha*float64(w.TotalStaff)/float64(n))
	mu := w.Ideal.Rate(staff, occupancy) * factor
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu < 0 {
		return 0
	}
	return mu
}

// NewRatePolicy creates the rate policy selected by cfg.Scenario. The
// homogeneous scenario uses the senior rate as its shared baseline.
// Panics on unrecognized names; Config.Validate catches those first.
func NewRatePolicy(cfg Config) RatePolicy {
	switch cfg.Scenario {
	case ScenarioHomogeneous:
		return &HomogeneousRate{IdealRate: cfg.SeniorRate}
	case ScenarioHeterogeneous:
		return &HeterogeneousRate{SeniorRate: cfg.SeniorRate, JuniorRate: cfg.JuniorRate}
	case ScenarioWorkloadDependent:
		return &WorkloadDependentRate{
			Ideal:      HeterogeneousRate{SeniorRate: cfg.SeniorRate, JuniorRate: cfg.JuniorRate},
			Alpha:      cfg.WorkloadAlpha,
			TotalStaff: cfg.SeniorCapacity + cfg.JuniorCapacity,
		}
	default:
		panic(fmt.Sprintf("unknown scenario %q", cfg.Scenario))
	}
}
