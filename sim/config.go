package sim

import "fmt"

// Hidden shelf behavior modes.
const (
	// ModeNormal keeps the hidden shelf behaving like every other shelf.
	ModeNormal = "normal"
	// ModeLeakThenTrap turns the hidden shelf into a one-way sink once
	// TrapStartTick is reached: it keeps receiving items but never emits.
	ModeLeakThenTrap = "leak_then_trap"
)

// Config specifies a complete inventory simulation. It is validated once,
// before any component is constructed; the core assumes a valid Config and
// performs no further checking.
type Config struct {
	NumShelves          int     // number of shelves in the circular arrangement
	ShelfCapacity       int     // max items a single shelf can hold
	TotalItems          int     // fixed total number of items in the system
	HiddenShelf         int     // the shelf the observer never inspects
	MovementProbability float64 // per-item chance of attempting a move each tick
	Mode                string  // hidden shelf behavior (ModeNormal or ModeLeakThenTrap)
	TrapStartTick       int64   // tick at which the trap activates in leak_then_trap mode
	ProcessNoiseQ       float64 // Kalman filter process noise
}

// DefaultConfig returns the baseline configuration: a lightly loaded ring of
// 20 shelves with slow item churn and a near-static filter.
func DefaultConfig() Config {
	return Config{
		NumShelves:          20,
		ShelfCapacity:       50,
		TotalItems:          300,
		HiddenShelf:         0,
		MovementProbability: 0.01,
		Mode:                ModeNormal,
		TrapStartTick:       150,
		ProcessNoiseQ:       0.1,
	}
}

// Validate checks every configuration constraint and returns an error naming
// the violated constraint and the offending value. A nil return means the
// configuration is feasible and safe to construct components from.
func (c Config) Validate() error {
	if c.NumShelves <= 0 {
		return fmt.Errorf("num_shelves must be positive, got %d", c.NumShelves)
	}
	if c.ShelfCapacity <= 0 {
		return fmt.Errorf("shelf_capacity must be positive, got %d", c.ShelfCapacity)
	}
	if c.TotalItems < 0 {
		return fmt.Errorf("total_items cannot be negative, got %d", c.TotalItems)
	}
	totalCapacity := c.NumShelves * c.ShelfCapacity
	if c.TotalItems > totalCapacity {
		return fmt.Errorf("total_items (%d) cannot exceed total system capacity (%d = %d shelves x %d capacity)",
			c.TotalItems, totalCapacity, c.NumShelves, c.ShelfCapacity)
	}
	if c.HiddenShelf < 0 || c.HiddenShelf >= c.NumShelves {
		return fmt.Errorf("hidden_shelf must be between 0 and %d, got %d", c.NumShelves-1, c.HiddenShelf)
	}
	if c.MovementProbability < 0.0 || c.MovementProbability > 1.0 {
		return fmt.Errorf("movement_probability must be between 0 and 1, got %v", c.MovementProbability)
	}
	if c.Mode != ModeNormal && c.Mode != ModeLeakThenTrap {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeNormal, ModeLeakThenTrap, c.Mode)
	}
	if c.TrapStartTick < 0 {
		return fmt.Errorf("trap_start_tick must be non-negative, got %d", c.TrapStartTick)
	}
	if c.ProcessNoiseQ < 0 {
		return fmt.Errorf("process_noise_q must be non-negative, got %v", c.ProcessNoiseQ)
	}
	return nil
}
