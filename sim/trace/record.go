// Package trace provides the pure data types of a simulation run's event log.
// This package has no dependencies on sim/ — records are produced there and
// consumed read-only by callers for inspection and visualization.
package trace

// Direction of a single item move around the circular shelf arrangement.
type Direction string

const (
	// DirectionLeft moves an item to the counter-clockwise neighbor.
	DirectionLeft Direction = "left"
	// DirectionRight moves an item to the clockwise neighbor.
	DirectionRight Direction = "right"
)

// MovementRecord captures the last successful single-item move of a tick.
// A tick in which nothing moved is recorded as the no-op sentinel:
// SourceShelf == 0, DestinationShelf == 0, DirectionRight.
type MovementRecord struct {
	Tick             int64
	SourceShelf      int
	DestinationShelf int
	Direction        Direction
}

// NoOp reports whether the record is the no-movement sentinel. Real moves
// always have distinct source and destination shelves.
func (r MovementRecord) NoOp() bool {
	return r.SourceShelf == 0 && r.DestinationShelf == 0
}

// ObservationRecord captures a single shelf inspection by the observer.
type ObservationRecord struct {
	Tick             int64
	ObservedShelf    int
	TrueQuantity     int
	PreviousEstimate int
}
