package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		ArrivalRate:    6.0,
		BedCapacity:    20,
		SeniorCapacity: 7,
		JuniorCapacity: 8,
		SeniorRate:     1.0 / 2.5,
		JuniorRate:     1.0 / 3.5,
		WorkloadAlpha:  1.0,
		Scenario:       ScenarioWorkloadDependent,
		Horizon:        7.0,
		Seed:           42,
	}
}

func TestHomogeneousRate_SharedForBothTypes(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = ScenarioHomogeneous
	policy := NewRatePolicy(cfg)

	assert.Equal(t, cfg.SeniorRate, policy.Rate(StaffSenior, 5))
	assert.Equal(t, cfg.SeniorRate, policy.Rate(StaffJunior, 5))
}

func TestHeterogeneousRate_PerType(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = ScenarioHeterogeneous
	policy := NewRatePolicy(cfg)

	assert.Equal(t, cfg.SeniorRate, policy.Rate(StaffSenior, 5))
	assert.Equal(t, cfg.JuniorRate, policy.Rate(StaffJunior, 5))
}

func TestWorkloadDependentRate_ClampsAtIdeal(t *testing.T) {
	policy := &WorkloadDependentRate{
		Ideal:      HeterogeneousRate{SeniorRate: 0.4, JuniorRate: 0.3},
		Alpha:      1.0,
		TotalStaff: 15,
	}

	// alpha*s/n >= 1 for n <= 15: no degradation
	assert.Equal(t, 0.4, policy.Rate(StaffSenior, 10))
	assert.Equal(t, 0.4, policy.Rate(StaffSenior, 15))
}

func TestWorkloadDependentRate_DegradesWithLoad(t *testing.T) {
	policy := &WorkloadDependentRate{
		Ideal:      HeterogeneousRate{SeniorRate: 0.4, JuniorRate: 0.3},
		Alpha:      1.0,
		TotalStaff: 15,
	}

	// n = 30 patients on 15 staff: rate halves
	assert.InDelta(t, 0.2, policy.Rate(StaffSenior, 30), 1e-12)
	assert.InDelta(t, 0.15, policy.Rate(StaffJunior, 30), 1e-12)
}

func TestWorkloadDependentRate_ZeroOccupancyClampedToOne(t *testing.T) {
	policy := &WorkloadDependentRate{
		Ideal:      HeterogeneousRate{SeniorRate: 0.4, JuniorRate: 0.3},
		Alpha:      1.0,
		TotalStaff: 15,
	}

	assert.Equal(t, policy.Rate(StaffSenior, 1), policy.Rate(StaffSenior, 0))
}

func TestWorkloadDependentRate_NonFiniteTreatedAsZero(t *testing.T) {
	policy := &WorkloadDependentRate{
		Ideal:      HeterogeneousRate{SeniorRate: math.Inf(1), JuniorRate: 0.3},
		Alpha:      1.0,
		TotalStaff: 0, // Inf * 0 → NaN inside the formula
	}

	assert.Equal(t, 0.0, policy.Rate(StaffSenior, 5))
}

func TestNewRatePolicy_UnknownScenarioPanics(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = "nonsense"
	assert.Panics(t, func() { NewRatePolicy(cfg) })
}
