package sim

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/shelfsim/shelfsim/sim/trace"
)

// Simulator maintains the ground truth of the inventory system. It has
// complete knowledge of all shelf quantities and is their sole writer;
// external callers only ever see copies.
type Simulator struct {
	config     Config
	rng        *PartitionedRNG
	quantities []int
	clock      int64
	trapActive bool
}

// NewSimulator creates a Simulator with a feasible starting distribution:
// every shelf quantity in [0, ShelfCapacity], summing exactly to TotalItems.
// All random draws of the run route through the simulator's own seeded RNG,
// never a process-global one.
func NewSimulator(config Config, seed int64) *Simulator {
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	return &Simulator{
		config: config,
		rng:    rng,
		quantities: distributeItems(
			config.NumShelves,
			config.TotalItems,
			config.ShelfCapacity,
			rng.ForSubsystem(SubsystemPlacement),
		),
	}
}

// Step advances ground truth by one tick and returns a record of the tick's
// last successful move, or the no-op sentinel when nothing moved.
//
// Departure counts are drawn per shelf from a binomial distribution over the
// quantities snapshotted before any mutation this tick, so an item can never
// move twice in one tick. Destination capacity is checked against live
// quantities: shelves processed later in id order can be blocked by moves made
// earlier in the same tick. A blocked item stays put, with no retry in the
// opposite direction.
func (s *Simulator) Step() trace.MovementRecord {
	if !s.trapActive && s.config.Mode == ModeLeakThenTrap && s.clock >= s.config.TrapStartTick {
		s.trapActive = true
		logrus.Infof("[tick %07d] Trap active: shelf %d stops emitting items", s.clock, s.config.HiddenShelf)
	}

	snapshot := make([]int, len(s.quantities))
	copy(snapshot, s.quantities)

	rng := s.rng.ForSubsystem(SubsystemTransport)

	moved := 0
	record := trace.MovementRecord{Tick: s.clock, Direction: trace.DirectionRight}

	for shelfID := 0; shelfID < s.config.NumShelves; shelfID++ {
		if s.trapActive && shelfID == s.config.HiddenShelf {
			// Trapped shelf still receives but never emits.
			continue
		}

		initialQty := snapshot[shelfID]
		if initialQty == 0 {
			continue
		}

		binomial := distuv.Binomial{
			N:   float64(initialQty),
			P:   s.config.MovementProbability,
			Src: rng,
		}
		departures := int(binomial.Rand())

		for i := 0; i < departures; i++ {
			if s.quantities[shelfID] == 0 {
				// Earlier moves this tick emptied the shelf.
				break
			}

			direction := trace.DirectionLeft
			if rng.Intn(2) == 1 {
				direction = trace.DirectionRight
			}
			dest := neighborShelf(shelfID, s.config.NumShelves, direction)

			if s.quantities[dest] >= s.config.ShelfCapacity {
				// Blocked: the item stays put. No retry to another shelf.
				continue
			}

			s.quantities[shelfID]--
			s.quantities[dest]++
			moved++
			if s.quantities[shelfID] < 0 || s.quantities[dest] > s.config.ShelfCapacity {
				logrus.Panicf("shelf invariant broken: source %d=%d dest %d=%d",
					shelfID, s.quantities[shelfID], dest, s.quantities[dest])
			}

			record.SourceShelf = shelfID
			record.DestinationShelf = dest
			record.Direction = direction
		}
	}

	if moved == 0 {
		record = trace.MovementRecord{Tick: s.clock, SourceShelf: 0, DestinationShelf: 0, Direction: trace.DirectionRight}
	}
	logrus.Debugf("[tick %07d] %d item(s) moved", s.clock, moved)

	s.clock++
	return record
}

// Quantity returns the true quantity on a single shelf.
func (s *Simulator) Quantity(shelfID int) int {
	return s.quantities[shelfID]
}

// State returns a copy of all shelf quantities, indexed by shelf ID. Callers
// cannot mutate the simulator's internal state through the returned slice.
func (s *Simulator) State() []int {
	state := make([]int, len(s.quantities))
	copy(state, s.quantities)
	return state
}

// CurrentTick returns the number of completed ticks.
func (s *Simulator) CurrentTick() int64 {
	return s.clock
}

// TrapActive reports whether the hidden shelf has stopped emitting items.
func (s *Simulator) TrapActive() bool {
	return s.trapActive
}
