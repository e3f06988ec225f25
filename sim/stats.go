// Tracks per-patient records and the occupancy step function, and derives
// the aggregate KPIs reported at the end of a run.

package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// OccupancySample records the patient count immediately after an admission
// or discharge. The series forms a right-continuous step function over
// [0, horizon]: the count at each sample holds until the next sample.
type OccupancySample struct {
	Time  float64
	Count int
}

// StatisticsCollector accumulates the patient log and the occupancy series
// as the simulation runs. It is append-only; each record arrives exactly
// once, at terminal status.
type StatisticsCollector struct {
	Patients  []PatientRecord
	Occupancy []OccupancySample
}

// NewStatisticsCollector creates an empty collector.
func NewStatisticsCollector() *StatisticsCollector {
	return &StatisticsCollector{
		Patients:  make([]PatientRecord, 0),
		Occupancy: make([]OccupancySample, 0),
	}
}

// LogPatient appends a terminal patient record.
func (c *StatisticsCollector) LogPatient(rec *PatientRecord) {
	c.Patients = append(c.Patients, *rec)
}

// SampleOccupancy appends one step of the occupancy function.
func (c *StatisticsCollector) SampleOccupancy(t float64, count int) {
	c.Occupancy = append(c.Occupancy, OccupancySample{Time: t, Count: count})
}

// Summary holds the derived KPIs for one run. A run with zero arrivals
// yields all-zero values, never NaN.
type Summary struct {
	TotalArrivals       int
	Discharged          int
	Balked              int
	Censored            int
	BlockingProbability float64
	MeanWaitForBed      float64
	MeanWaitForStaff    float64
	MeanTreatment       float64
	MeanTreatmentByType map[StaffType]float64
	AvgOccupancy        float64
	BedUtilization      float64
}

// Summarize derives the KPI summary from the two artifacts. horizon and
// bedCapacity come from the run configuration. Everything here is
// computable from the patient log and the occupancy series alone; the
// summary is a convenience, not a separate source of truth.
func (c *StatisticsCollector) Summarize(horizon float64, bedCapacity int) *Summary {
	s := &Summary{
		TotalArrivals:       len(c.Patients),
		MeanTreatmentByType: make(map[StaffType]float64),
	}

	var waitBed, waitStaff, treat []float64
	treatByType := make(map[StaffType][]float64)
	for _, rec := range c.Patients {
		switch rec.Status {
		case StatusDischarged:
			s.Discharged++
			waitBed = append(waitBed, rec.WaitForBed())
			waitStaff = append(waitStaff, rec.WaitForStaff())
			treat = append(treat, rec.TreatmentDuration())
			treatByType[rec.StaffType] = append(treatByType[rec.StaffType], rec.TreatmentDuration())
		case StatusBalked:
			s.Balked++
		case StatusCensored:
			s.Censored++
		}
	}

	if s.TotalArrivals > 0 {
		s.BlockingProbability = float64(s.Balked) / float64(s.TotalArrivals)
	}
	s.MeanWaitForBed = meanOrZero(waitBed)
	s.MeanWaitForStaff = meanOrZero(waitStaff)
	s.MeanTreatment = meanOrZero(treat)
	for st, vals := range treatByType {
		s.MeanTreatmentByType[st] = meanOrZero(vals)
	}
	if horizon > 0 {
		s.AvgOccupancy = c.integrateOccupancy(horizon) / horizon
	}
	if bedCapacity > 0 {
		s.BedUtilization = s.AvgOccupancy / float64(bedCapacity)
	}
	return s
}

// integrateOccupancy computes the piecewise-constant integral of the
// occupancy step function over [0, horizon]: the sum of count×Δt between
// consecutive samples, starting from an empty ward at time zero.
func (c *StatisticsCollector) integrateOccupancy(horizon float64) float64 {
	total := 0.0
	prevTime, prevCount := 0.0, 0
	for _, sample := range c.Occupancy {
		t := math.Min(sample.Time, horizon)
		total += float64(prevCount) * (t - prevTime)
		prevTime, prevCount = t, sample.Count
	}
	if prevTime < horizon {
		total += float64(prevCount) * (horizon - prevTime)
	}
	return total
}

func meanOrZero(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// Map exposes the summary as the metric-name → value mapping consumed by
// reporting layers.
func (s *Summary) Map() map[string]float64 {
	m := map[string]float64{
		"total_arrivals":       float64(s.TotalArrivals),
		"discharged":           float64(s.Discharged),
		"balked":               float64(s.Balked),
		"censored":             float64(s.Censored),
		"blocking_probability": s.BlockingProbability,
		"mean_wait_for_bed":    s.MeanWaitForBed,
		"mean_wait_for_staff":  s.MeanWaitForStaff,
		"mean_treatment_time":  s.MeanTreatment,
		"avg_occupancy":        s.AvgOccupancy,
		"bed_utilization":      s.BedUtilization,
	}
	for st, v := range s.MeanTreatmentByType {
		m["mean_treatment_time_"+string(st)] = v
	}
	return m
}

// Print displays the aggregated KPIs at the end of a run.
func (s *Summary) Print() {
	fmt.Println("=== Ward Simulation KPIs ===")
	fmt.Printf("Total arrivals        : %d\n", s.TotalArrivals)
	fmt.Printf("Discharged            : %d\n", s.Discharged)
	fmt.Printf("Balked                : %d\n", s.Balked)
	fmt.Printf("Censored at horizon   : %d\n", s.Censored)
	fmt.Printf("Blocking probability  : %.4f\n", s.BlockingProbability)
	fmt.Printf("Mean wait for bed     : %.4f days\n", s.MeanWaitForBed)
	fmt.Printf("Mean wait for staff   : %.4f days\n", s.MeanWaitForStaff)
	fmt.Printf("Mean treatment time   : %.4f days\n", s.MeanTreatment)
	for _, st := range []StaffType{StaffSenior, StaffJunior} {
		if v, ok := s.MeanTreatmentByType[st]; ok {
			fmt.Printf("  by %-6s staff      : %.4f days\n", st, v)
		}
	}
	fmt.Printf("Average occupancy     : %.4f patients\n", s.AvgOccupancy)
	fmt.Printf("Bed utilization       : %.2f%%\n", s.BedUtilization*100)
}
