package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every knob for one simulation run. Rates are patients per
// day, durations in days. The configuration is immutable for the duration
// of a run; the engine only reads it.
//
// BedCapacity zero is allowed and makes every arrival balk; staff
// capacities may be zero individually, but at least one type must be
// staffed or the staffing race could never resolve.
type Config struct {
	ArrivalRate    float64 `yaml:"arrival_rate"`
	BedCapacity    int     `yaml:"bed_capacity"`
	SeniorCapacity int     `yaml:"senior_capacity"`
	JuniorCapacity int     `yaml:"junior_capacity"`
	SeniorRate     float64 `yaml:"senior_rate"`
	JuniorRate     float64 `yaml:"junior_rate"`
	WorkloadAlpha  float64 `yaml:"workload_alpha"`
	Scenario       string  `yaml:"scenario"`
	Horizon        float64 `yaml:"horizon"`
	Seed           int64   `yaml:"seed"`
}

// LoadConfig reads and parses a YAML scenario file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects a bad configuration before any simulation state is
// created, naming the offending field.
func (c Config) Validate() error {
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival_rate must be positive, got %f", c.ArrivalRate)
	}
	if c.BedCapacity < 0 {
		return fmt.Errorf("bed_capacity must be non-negative, got %d", c.BedCapacity)
	}
	if c.SeniorCapacity < 0 {
		return fmt.Errorf("senior_capacity must be non-negative, got %d", c.SeniorCapacity)
	}
	if c.JuniorCapacity < 0 {
		return fmt.Errorf("junior_capacity must be non-negative, got %d", c.JuniorCapacity)
	}
	if c.SeniorCapacity+c.JuniorCapacity == 0 {
		return fmt.Errorf("at least one staff type must have capacity > 0")
	}
	if c.SeniorRate <= 0 {
		return fmt.Errorf("senior_rate must be positive, got %f", c.SeniorRate)
	}
	if c.JuniorRate <= 0 {
		return fmt.Errorf("junior_rate must be positive, got %f", c.JuniorRate)
	}
	if c.WorkloadAlpha <= 0 {
		return fmt.Errorf("workload_alpha must be positive, got %f", c.WorkloadAlpha)
	}
	if !ValidScenarios[c.Scenario] {
		return fmt.Errorf("unknown scenario %q", c.Scenario)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %f", c.Horizon)
	}
	return nil
}
