// Defines the PatientRecord that models an individual patient's trip
// through the ward. Tracks arrival, admission, staff assignment, and
// discharge timestamps plus the terminal status.

package sim

import (
	"fmt"
	"math"
)

// StaffType identifies which staff pool treated a patient.
type StaffType string

const (
	StaffSenior StaffType = "senior"
	StaffJunior StaffType = "junior"
	StaffNone   StaffType = "none"
)

// PatientStatus is the terminal classification of a patient record.
type PatientStatus string

const (
	// StatusDischarged marks a patient who completed treatment.
	StatusDischarged PatientStatus = "discharged"
	// StatusBalked marks a patient turned away immediately because every
	// bed was occupied at the instant of arrival.
	StatusBalked PatientStatus = "balked"
	// StatusCensored marks a patient still in the ward when the horizon
	// was reached; the record carries no discharge time.
	StatusCensored PatientStatus = "censored"
)

// PatientRecord is the per-patient log entry. It is created at arrival and
// appended to the log exactly once at terminal status, never mutated
// afterwards. Timestamps for steps the patient never reached are NaN.
type PatientRecord struct {
	ID                  int
	ArrivalTime         float64
	AdmissionTime       float64
	StaffAssignmentTime float64
	DischargeTime       float64
	StaffType           StaffType
	Status              PatientStatus
}

func newPatientRecord(id int, arrival float64) *PatientRecord {
	nan := math.NaN()
	return &PatientRecord{
		ID:                  id,
		ArrivalTime:         arrival,
		AdmissionTime:       nan,
		StaffAssignmentTime: nan,
		DischargeTime:       nan,
		StaffType:           StaffNone,
	}
}

// WaitForBed is the time between arrival and admission. NaN for patients
// that were never admitted.
func (r *PatientRecord) WaitForBed() float64 {
	return r.AdmissionTime - r.ArrivalTime
}

// WaitForStaff is the time between admission and staff assignment. NaN for
// patients that never reached a staff member.
func (r *PatientRecord) WaitForStaff() float64 {
	return r.StaffAssignmentTime - r.AdmissionTime
}

// TreatmentDuration is the time between staff assignment and discharge.
// NaN for patients that never finished treatment.
func (r *PatientRecord) TreatmentDuration() float64 {
	return r.DischargeTime - r.StaffAssignmentTime
}

// String returns a human-readable representation of a PatientRecord.
func (r PatientRecord) String() string {
	return fmt.Sprintf("Patient: (ID: %d, Status: %s, StaffType: %s, ArrivalTime: %.4f)",
		r.ID, r.Status, r.StaffType, r.ArrivalTime)
}
