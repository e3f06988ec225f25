package sim

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// WardModel composes the bed pool, the typed staff pools, the balking
// admission policy, and the service-rate policy into the patient
// lifecycle: Arrived → (Balked | Admitted) → AwaitingStaff → InTreatment →
// Discharged.
type WardModel struct {
	cfg   Config
	beds  *ResourcePool
	staff []*ResourcePool
	types []StaffType
	rates RatePolicy
	stats *StatisticsCollector

	nextPatientID int
	inSystem      map[int]*Patient
}

// Patient is the in-flight process state for one patient between admission
// and discharge.
type Patient struct {
	Record *PatientRecord
	bed    *Request
	staff  *Request
}

// NewWardModel builds the pools and the rate policy for one run. cfg must
// already be validated.
func NewWardModel(cfg Config, stats *StatisticsCollector) *WardModel {
	return &WardModel{
		cfg:  cfg,
		beds: NewResourcePool("beds", cfg.BedCapacity),
		staff: []*ResourcePool{
			NewResourcePool("senior-staff", cfg.SeniorCapacity),
			NewResourcePool("junior-staff", cfg.JuniorCapacity),
		},
		types:    []StaffType{StaffSenior, StaffJunior},
		rates:    NewRatePolicy(cfg),
		stats:    stats,
		inSystem: make(map[int]*Patient),
	}
}

// Beds exposes the bed pool, mainly for tests and reporting.
func (w *WardModel) Beds() *ResourcePool { return w.beds }

// Start seeds the arrival process; the first patient arrives one
// exponential interarrival gap after time zero.
func (w *WardModel) Start(sim *Simulator) {
	w.scheduleNextArrival(sim)
}

func (w *WardModel) scheduleNextArrival(sim *Simulator) {
	iat := sim.RNG.ForSubsystem(SubsystemArrivals).ExpFloat64() / w.cfg.ArrivalRate
	sim.Schedule(&ArrivalEvent{time: sim.After(iat), Ward: w})
}

// handleArrival runs the admission policy for one arriving patient. The
// occupancy check and the bed acquisition both happen inside this single
// event turn, so no other arrival can interleave between them and the bed
// request below is always granted immediately.
func (w *WardModel) handleArrival(sim *Simulator) {
	w.nextPatientID++
	rec := newPatientRecord(w.nextPatientID, sim.Clock)
	logrus.Debugf("<< arrival: patient %d at %.4f", rec.ID, sim.Clock)

	// Balking: a patient arriving to a full ward leaves permanently and
	// never queues for a bed.
	if w.beds.InUse() >= w.beds.Capacity() {
		rec.Status = StatusBalked
		w.stats.LogPatient(rec)
		logrus.Debugf(">> balked: patient %d, all %d beds occupied", rec.ID, w.beds.Capacity())
		return
	}

	p := &Patient{Record: rec}
	p.bed = w.beds.Request(nil)
	rec.AdmissionTime = sim.Clock
	w.inSystem[rec.ID] = p
	w.stats.SampleOccupancy(sim.Clock, w.beds.InUse())

	// Whichever staff type frees first treats the patient; the losing
	// request is withdrawn so it cannot swallow a later grant.
	StartRace(w.staff, func(g RaceGrant) {
		w.beginTreatment(sim, p, w.types[g.Index], g.Request)
	})
}

// beginTreatment runs when the staffing race resolves. The effective rate
// is evaluated here, against occupancy at this instant, not at arrival.
func (w *WardModel) beginTreatment(sim *Simulator, p *Patient, staff StaffType, req *Request) {
	p.staff = req
	p.Record.StaffType = staff
	p.Record.StaffAssignmentTime = sim.Clock

	mu := w.rates.Rate(staff, w.beds.InUse())
	// A zero rate yields an infinitely long treatment: the discharge event
	// falls past any horizon and the patient ends up censored.
	duration := math.Inf(1)
	if mu > 0 {
		duration = sim.RNG.ForSubsystem(SubsystemTreatment).ExpFloat64() / mu
	}
	logrus.Debugf("-- treatment: patient %d by %s staff, rate=%.4f/day", p.Record.ID, staff, mu)
	sim.Schedule(&TreatmentEndEvent{time: sim.After(duration), Ward: w, Patient: p})
}

// discharge completes a patient: the bed and the staff member return to
// their pools, the occupancy series records the decrement, and the
// terminal record is logged. The bed is released before the staff member,
// so when the freed member resumes the longest-waiting admitted patient
// within this same instant, that patient's rate is evaluated against an
// occupancy that no longer counts the departing patient.
func (w *WardModel) discharge(sim *Simulator, p *Patient) {
	w.beds.Release(p.bed)
	w.stats.SampleOccupancy(sim.Clock, w.beds.InUse())
	p.staff.Pool().Release(p.staff)

	p.Record.DischargeTime = sim.Clock
	p.Record.Status = StatusDischarged
	delete(w.inSystem, p.Record.ID)
	w.stats.LogPatient(p.Record)
	logrus.Debugf(">> discharged: patient %d by %s at %.4f", p.Record.ID, p.Record.StaffType, sim.Clock)
}

// Finalize classifies patients still in the ward when the horizon was
// reached. Their records are logged as censored, in arrival order, so
// every arrival reaches exactly one terminal status.
func (w *WardModel) Finalize() {
	ids := make([]int, 0, len(w.inSystem))
	for id := range w.inSystem {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		rec := w.inSystem[id].Record
		rec.Status = StatusCensored
		w.stats.LogPatient(rec)
	}
	clear(w.inSystem)
}
