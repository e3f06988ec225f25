package sim

// Event defines the interface for all simulation events.
// Each event has a due time in virtual days and an Execute method that
// advances simulation state when invoked. The Simulator owns an event
// between scheduling and firing.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents the arrival of the next patient at the ward.
type ArrivalEvent struct {
	time float64
	Ward *WardModel
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute admits or balks the arriving patient, then draws the next
// interarrival gap and reschedules itself. One self-rescheduling arrival
// event per run plays the role of the patient generator process.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	e.Ward.handleArrival(sim)
	e.Ward.scheduleNextArrival(sim)
}

// TreatmentEndEvent represents a patient completing treatment.
type TreatmentEndEvent struct {
	time    float64
	Ward    *WardModel
	Patient *Patient
}

// Timestamp returns the scheduled time of the TreatmentEndEvent.
func (e *TreatmentEndEvent) Timestamp() float64 {
	return e.time
}

// Execute discharges the patient, returning the staff member and the bed
// to their pools.
func (e *TreatmentEndEvent) Execute(sim *Simulator) {
	e.Ward.discharge(sim, e.Patient)
}
