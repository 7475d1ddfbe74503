// Package sim provides the core engine for the shelf inventory simulation:
// a conserved stochastic transport model over a circular shelf arrangement,
// observed one shelf at a time by a partially-blind estimator.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - simulator.go: ground truth transport (binomial departures, circular
//     neighbors, intra-tick capacity blocking, leak-then-trap sink)
//   - observer.go: round-robin partial observation, the staleness-annotated
//     belief table, and the composite measurement fed to the filter
//   - runner.go: the tick loop sequencing movement before observation and
//     collecting analytics snapshots
//
// # Architecture
//
// The sim package owns all mutable state; sim/trace stores the pure record
// types of the event log. Ownership boundaries are strict: the Simulator is
// the sole writer of shelf quantities, the Observer the sole writer of the
// belief table and filter state, and every public accessor returns a copy.
//
// Everything is single-threaded and deterministic: all random draws route
// through a PartitionedRNG derived from the run's seed (rng.go), so a fixed
// seed reproduces a run exactly.
package sim
