package sim

import (
	"golang.org/x/exp/rand"

	"github.com/shelfsim/shelfsim/sim/trace"
)

// distributeItems spreads totalItems across numShelves without exceeding
// shelfCapacity on any shelf. Items are placed one at a time on uniformly
// chosen shelves; if the retry budget runs out (possible near full occupancy),
// the remainder is filled deterministically left to right so the function
// always terminates with an exact total.
//
// Feasibility (totalItems <= numShelves*shelfCapacity) is the caller's
// responsibility, enforced by Config.Validate.
func distributeItems(numShelves, totalItems, shelfCapacity int, rng *rand.Rand) []int {
	quantities := make([]int, numShelves)
	if totalItems == 0 {
		return quantities
	}

	placed := 0
	maxAttempts := totalItems * 100
	for attempts := 0; placed < totalItems && attempts < maxAttempts; attempts++ {
		shelf := rng.Intn(numShelves)
		if quantities[shelf] < shelfCapacity {
			quantities[shelf]++
			placed++
		}
	}

	// Retry budget exhausted: fill shelves sequentially until every item
	// is placed.
	for shelf := 0; shelf < numShelves && placed < totalItems; shelf++ {
		for quantities[shelf] < shelfCapacity && placed < totalItems {
			quantities[shelf]++
			placed++
		}
	}

	return quantities
}

// neighborShelf returns the circular neighbor of shelfID one position away in
// the given direction. Right is clockwise (+1), left is counter-clockwise (-1).
func neighborShelf(shelfID, numShelves int, direction trace.Direction) int {
	if direction == trace.DirectionRight {
		return (shelfID + 1) % numShelves
	}
	return (shelfID - 1 + numShelves) % numShelves
}
