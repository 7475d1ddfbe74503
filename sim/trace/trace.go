package trace

// RunTrace collects the event log of a simulation run: one movement record and
// one observation record per tick, in tick order.
type RunTrace struct {
	Movements    []MovementRecord
	Observations []ObservationRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace() *RunTrace {
	return &RunTrace{
		Movements:    make([]MovementRecord, 0),
		Observations: make([]ObservationRecord, 0),
	}
}

// RecordMovement appends a movement record.
func (rt *RunTrace) RecordMovement(record MovementRecord) {
	rt.Movements = append(rt.Movements, record)
}

// RecordObservation appends an observation record.
func (rt *RunTrace) RecordObservation(record ObservationRecord) {
	rt.Observations = append(rt.Observations, record)
}

// Ticks returns the number of recorded ticks.
func (rt *RunTrace) Ticks() int {
	return len(rt.Movements)
}
