package sim

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Report is one analytics snapshot: derived metrics computed over
// already-produced core state (ground truth copy, belief copy, filter state).
// Pure arithmetic; the core never consults a Report.
type Report struct {
	Tick               int64
	TrueTotalObserved  int     // ground truth total over observable shelves
	TrueTotalSystem    int     // ground truth total over all shelves
	ItemsOnHiddenShelf int     // items accumulated on the hidden shelf
	EstimatedTotal     float64 // filter estimate of the observable total
	TotalError         float64 // |estimate - true observed total|
	TotalErrorPct      float64 // percentage error on a 0-100 scale
	KalmanUncertainty  float64 // filter covariance
	MAE                float64 // mean absolute error over observed shelves
	MaxStaleness       int     // max staleness across beliefs
}

// TotalError returns the absolute error of the total estimate.
func TotalError(trueTotal int, estimatedTotal float64) float64 {
	return math.Abs(estimatedTotal - float64(trueTotal))
}

// TotalErrorPercentage returns the percentage error of the total estimate on a
// 0-100 scale. A zero truth yields 0 for a zero estimate and 100 otherwise.
func TotalErrorPercentage(trueTotal int, estimatedTotal float64) float64 {
	if trueTotal == 0 {
		if estimatedTotal == 0 {
			return 0.0
		}
		return 100.0
	}
	return math.Abs(estimatedTotal-float64(trueTotal)) / float64(trueTotal) * 100.0
}

// MeanAbsoluteError computes the mean absolute per-shelf estimation error over
// shelves that have been observed at least once. Never-observed shelves are
// excluded; with no observed shelves the error is 0.
func MeanAbsoluteError(groundTruth []int, beliefs []BeliefRecord) float64 {
	errs := make([]float64, 0, len(beliefs))
	for _, b := range beliefs {
		if b.LastObservedTick < 0 {
			continue
		}
		errs = append(errs, math.Abs(float64(b.EstimatedQuantity-groundTruth[b.ShelfID])))
	}
	if len(errs) == 0 {
		return 0.0
	}
	return stat.Mean(errs, nil)
}

// GenerateReport computes a full analytics snapshot for one reporting tick.
func GenerateReport(tick int64, groundTruth []int, beliefs []BeliefRecord, hiddenShelf int, estimatedTotal, uncertainty float64) Report {
	trueTotalSystem := 0
	trueTotalObserved := 0
	for shelfID, qty := range groundTruth {
		trueTotalSystem += qty
		if shelfID != hiddenShelf {
			trueTotalObserved += qty
		}
	}

	maxStaleness := 0
	for _, b := range beliefs {
		if b.Staleness > maxStaleness {
			maxStaleness = b.Staleness
		}
	}

	return Report{
		Tick:               tick,
		TrueTotalObserved:  trueTotalObserved,
		TrueTotalSystem:    trueTotalSystem,
		ItemsOnHiddenShelf: groundTruth[hiddenShelf],
		EstimatedTotal:     estimatedTotal,
		TotalError:         TotalError(trueTotalObserved, estimatedTotal),
		TotalErrorPct:      TotalErrorPercentage(trueTotalObserved, estimatedTotal),
		KalmanUncertainty:  uncertainty,
		MAE:                MeanAbsoluteError(groundTruth, beliefs),
		MaxStaleness:       maxStaleness,
	}
}
