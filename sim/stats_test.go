package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EmptyRunIsAllZero(t *testing.T) {
	c := NewStatisticsCollector()

	s := c.Summarize(10.0, 5)

	assert.Equal(t, 0, s.TotalArrivals)
	assert.Equal(t, 0.0, s.BlockingProbability)
	assert.Equal(t, 0.0, s.MeanWaitForBed)
	assert.Equal(t, 0.0, s.MeanWaitForStaff)
	assert.Equal(t, 0.0, s.MeanTreatment)
	assert.Equal(t, 0.0, s.AvgOccupancy)
	assert.Equal(t, 0.0, s.BedUtilization)
	for name, v := range s.Map() {
		assert.False(t, math.IsNaN(v), "metric %s must not be NaN on an empty run", name)
	}
}

func TestSummarize_OccupancyIntegration(t *testing.T) {
	c := NewStatisticsCollector()
	// step function: 0 on [0,1), 1 on [1,2), 2 on [2,3), 1 on [3,4), 0 after
	c.SampleOccupancy(1.0, 1)
	c.SampleOccupancy(2.0, 2)
	c.SampleOccupancy(3.0, 1)
	c.SampleOccupancy(4.0, 0)

	s := c.Summarize(5.0, 2)

	// integral = 1 + 2 + 1 = 4 patient-days over 5 days
	assert.InDelta(t, 0.8, s.AvgOccupancy, 1e-12)
	assert.InDelta(t, 0.4, s.BedUtilization, 1e-12)
}

func TestSummarize_SamplesBeyondHorizonAreClamped(t *testing.T) {
	c := NewStatisticsCollector()
	c.SampleOccupancy(1.0, 1)
	c.SampleOccupancy(9.0, 2) // past the 4-day horizon

	s := c.Summarize(4.0, 2)

	// only 1 patient on [1,4): integral 3 over 4 days
	assert.InDelta(t, 0.75, s.AvgOccupancy, 1e-12)
}

func TestSummarize_PatientAccountingAndMeans(t *testing.T) {
	c := NewStatisticsCollector()

	discharged := func(id int, staff StaffType, arrival, admit, assign, out float64) *PatientRecord {
		return &PatientRecord{
			ID: id, ArrivalTime: arrival, AdmissionTime: admit,
			StaffAssignmentTime: assign, DischargeTime: out,
			StaffType: staff, Status: StatusDischarged,
		}
	}
	c.LogPatient(discharged(1, StaffSenior, 0.0, 0.0, 1.0, 3.0)) // treat 2.0
	c.LogPatient(discharged(2, StaffJunior, 0.5, 0.5, 1.5, 5.5)) // treat 4.0
	balked := newPatientRecord(3, 2.0)
	balked.Status = StatusBalked
	c.LogPatient(balked)
	censored := newPatientRecord(4, 3.0)
	censored.AdmissionTime = 3.0
	censored.Status = StatusCensored
	c.LogPatient(censored)

	s := c.Summarize(10.0, 5)

	assert.Equal(t, 4, s.TotalArrivals)
	assert.Equal(t, 2, s.Discharged)
	assert.Equal(t, 1, s.Balked)
	assert.Equal(t, 1, s.Censored)
	assert.InDelta(t, 0.25, s.BlockingProbability, 1e-12)
	assert.InDelta(t, 0.0, s.MeanWaitForBed, 1e-12)
	assert.InDelta(t, 1.0, s.MeanWaitForStaff, 1e-12)
	assert.InDelta(t, 3.0, s.MeanTreatment, 1e-12)
	require.Contains(t, s.MeanTreatmentByType, StaffSenior)
	require.Contains(t, s.MeanTreatmentByType, StaffJunior)
	assert.InDelta(t, 2.0, s.MeanTreatmentByType[StaffSenior], 1e-12)
	assert.InDelta(t, 4.0, s.MeanTreatmentByType[StaffJunior], 1e-12)
}

func TestSummaryMap_ContainsPerTypeMeans(t *testing.T) {
	c := NewStatisticsCollector()
	rec := &PatientRecord{
		ID: 1, ArrivalTime: 0, AdmissionTime: 0,
		StaffAssignmentTime: 0, DischargeTime: 2,
		StaffType: StaffSenior, Status: StatusDischarged,
	}
	c.LogPatient(rec)

	m := c.Summarize(10.0, 1).Map()

	assert.Equal(t, 1.0, m["total_arrivals"])
	assert.Equal(t, 1.0, m["discharged"])
	assert.InDelta(t, 2.0, m["mean_treatment_time_senior"], 1e-12)
}
