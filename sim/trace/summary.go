package trace

// TraceSummary aggregates statistics from a RunTrace.
type TraceSummary struct {
	Ticks                 int
	IdleTicks             int         // ticks whose movement record is the no-op sentinel
	MovementsBySource     map[int]int // source shelf → count of last-move records
	ObservationsByShelf   map[int]int // shelf ID → times observed
	UniqueShelvesObserved int
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *TraceSummary {
	summary := &TraceSummary{
		MovementsBySource:   make(map[int]int),
		ObservationsByShelf: make(map[int]int),
	}
	if rt == nil {
		return summary
	}

	summary.Ticks = len(rt.Movements)
	for _, m := range rt.Movements {
		if m.NoOp() {
			summary.IdleTicks++
			continue
		}
		summary.MovementsBySource[m.SourceShelf]++
	}

	for _, o := range rt.Observations {
		summary.ObservationsByShelf[o.ObservedShelf]++
	}
	summary.UniqueShelvesObserved = len(summary.ObservationsByShelf)

	return summary
}
