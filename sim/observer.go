package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/shelfsim/shelfsim/sim/trace"
)

// BeliefRecord is the observer's belief about one observable shelf.
type BeliefRecord struct {
	ShelfID           int
	EstimatedQuantity int   // last true value seen (0 until first observation)
	LastObservedTick  int64 // -1 until first observation
	Staleness         int   // ticks since last observation, 0 when just observed
}

// Observer builds an estimate of system-wide inventory from partial
// observations. It can inspect only one shelf per tick, in a strict
// round-robin order over all shelves except the hidden one, and feeds the
// resulting composite (partially stale) measurement into a scalar Kalman
// filter tracking the observable total.
type Observer struct {
	config     Config
	observable []int          // observable shelf IDs in ascending order
	beliefs    []BeliefRecord // parallel to observable
	cursor     int            // round-robin position in observable
	filter     *ScalarKalmanFilter
}

// NewObserver creates an Observer with an empty belief table: zero estimates,
// never-observed markers, staleness zero, and the round-robin cursor at the
// first observable shelf.
func NewObserver(config Config) *Observer {
	observable := make([]int, 0, config.NumShelves-1)
	for shelfID := 0; shelfID < config.NumShelves; shelfID++ {
		if shelfID != config.HiddenShelf {
			observable = append(observable, shelfID)
		}
	}

	beliefs := make([]BeliefRecord, len(observable))
	for i, shelfID := range observable {
		beliefs[i] = BeliefRecord{
			ShelfID:          shelfID,
			LastObservedTick: -1,
		}
	}

	return &Observer{
		config:     config,
		observable: observable,
		beliefs:    beliefs,
		cursor:     0,
		filter:     NewScalarKalmanFilter(config.ProcessNoiseQ),
	}
}

// Observe inspects the next shelf in the round-robin schedule, refreshes its
// belief from the simulator's true quantity, ages every other belief by one
// tick, and folds the composite measurement into the total-inventory filter.
// This is the only place staleness changes.
func (o *Observer) Observe(simulator *Simulator, tick int64) trace.ObservationRecord {
	idx := o.cursor
	shelfID := o.observable[idx]

	trueQuantity := simulator.Quantity(shelfID)
	previous := o.beliefs[idx].EstimatedQuantity

	o.beliefs[idx].EstimatedQuantity = trueQuantity
	o.beliefs[idx].LastObservedTick = tick
	o.beliefs[idx].Staleness = 0
	for i := range o.beliefs {
		if i != idx {
			o.beliefs[i].Staleness++
		}
	}

	o.cursor = (o.cursor + 1) % len(o.observable)

	// Composite measurement: the sum of per-shelf estimates, each term
	// arbitrarily stale. Measurement noise grows with aggregate staleness.
	z := 0.0
	totalStaleness := 0.0
	for _, b := range o.beliefs {
		z += float64(b.EstimatedQuantity)
		totalStaleness += float64(b.Staleness)
	}
	r := baseMeasurementNoise + stalenessNoiseWeight*totalStaleness
	estimate := o.filter.Update(z, r)

	logrus.Debugf("[tick %07d] Observed shelf %d: true=%d prev=%d total_estimate=%.2f",
		tick, shelfID, trueQuantity, previous, estimate)

	return trace.ObservationRecord{
		Tick:             tick,
		ObservedShelf:    shelfID,
		TrueQuantity:     trueQuantity,
		PreviousEstimate: previous,
	}
}

// BeliefTable returns a copy of the per-shelf beliefs. Callers cannot mutate
// the observer's internal state through the returned slice.
func (o *Observer) BeliefTable() []BeliefRecord {
	beliefs := make([]BeliefRecord, len(o.beliefs))
	copy(beliefs, o.beliefs)
	return beliefs
}

// EstimatedTotal returns the filter's estimate of the observable total.
func (o *Observer) EstimatedTotal() float64 {
	return o.filter.Estimate()
}

// EstimateUncertainty returns the filter's estimate covariance.
func (o *Observer) EstimateUncertainty() float64 {
	return o.filter.Covariance()
}
