// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object holding virtual time, the pending-event
// heap, and the run-scoped random streams. One Simulator is created per
// run; there are no package-level singletons, so runs execute
// independently of each other.
type Simulator struct {
	Clock   float64
	Horizon float64
	Events  *EventHeap
	RNG     *PartitionedRNG

	nextSeq uint64
}

// NewSimulator creates a simulator for one run with the given horizon (in
// days) and master seed.
func NewSimulator(horizon float64, seed int64) *Simulator {
	return &Simulator{
		Horizon: horizon,
		Events:  NewEventHeap(),
		RNG:     NewPartitionedRNG(seed),
	}
}

// Schedule pushes an event into the pending heap. Events scheduled at the
// same due time fire in scheduling order.
func (sim *Simulator) Schedule(ev Event) {
	sim.nextSeq++
	sim.Events.Schedule(ev, sim.nextSeq)
}

// After converts a delay into an absolute due time. A negative delay is a
// programming error.
func (sim *Simulator) After(delay float64) float64 {
	if delay < 0 {
		panic(fmt.Sprintf("negative delay %f", delay))
	}
	return sim.Clock + delay
}

// Run executes pending events in due-time order until the heap drains or
// the next event falls past the horizon. Events beyond the horizon are
// never executed. Time never moves backward; the clock rests at the
// horizon when the run ends.
func (sim *Simulator) Run() {
	for sim.Events.Len() > 0 {
		if sim.Events.Peek().Timestamp() > sim.Horizon {
			break
		}
		// get the next event to be simulated
		ev := sim.Events.PopNext()
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%010.4f] executing %T", sim.Clock, ev)
		// process the event
		ev.Execute(sim)
	}
	sim.Clock = sim.Horizon
	logrus.Infof("[t=%010.4f] simulation ended", sim.Clock)
}
