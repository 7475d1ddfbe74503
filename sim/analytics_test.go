package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalError(t *testing.T) {
	assert.Equal(t, 0.0, TotalError(100, 100.0))
	assert.Equal(t, 2.5, TotalError(100, 102.5))
	assert.Equal(t, 2.5, TotalError(100, 97.5))
	assert.Equal(t, 40.0, TotalError(0, 40.0))
}

func TestTotalErrorPercentage(t *testing.T) {
	tests := []struct {
		name           string
		trueTotal      int
		estimatedTotal float64
		want           float64
	}{
		{"exact", 200, 200.0, 0.0},
		{"ten percent high", 200, 220.0, 10.0},
		{"ten percent low", 200, 180.0, 10.0},
		{"zero truth zero estimate", 0, 0.0, 0.0},
		{"zero truth nonzero estimate", 0, 5.0, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalErrorPercentage(tt.trueTotal, tt.estimatedTotal)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMeanAbsoluteError(t *testing.T) {
	groundTruth := []int{0, 10, 20, 30}
	beliefs := []BeliefRecord{
		{ShelfID: 1, EstimatedQuantity: 12, LastObservedTick: 5},
		{ShelfID: 2, EstimatedQuantity: 16, LastObservedTick: 6},
		{ShelfID: 3, EstimatedQuantity: 99, LastObservedTick: -1}, // never observed
	}

	// |12-10| = 2 and |16-20| = 4 average to 3; shelf 3 is excluded.
	assert.InDelta(t, 3.0, MeanAbsoluteError(groundTruth, beliefs), 1e-9)
}

func TestMeanAbsoluteError_NoObservations(t *testing.T) {
	groundTruth := []int{5, 5, 5}
	beliefs := []BeliefRecord{
		{ShelfID: 1, LastObservedTick: -1},
		{ShelfID: 2, LastObservedTick: -1},
	}
	assert.Equal(t, 0.0, MeanAbsoluteError(groundTruth, beliefs))
}

func TestGenerateReport(t *testing.T) {
	groundTruth := []int{7, 10, 20, 13} // hidden shelf 0 holds 7
	beliefs := []BeliefRecord{
		{ShelfID: 1, EstimatedQuantity: 10, LastObservedTick: 40, Staleness: 2},
		{ShelfID: 2, EstimatedQuantity: 18, LastObservedTick: 41, Staleness: 1},
		{ShelfID: 3, EstimatedQuantity: 13, LastObservedTick: 42, Staleness: 0},
	}

	report := GenerateReport(42, groundTruth, beliefs, 0, 44.0, 3.5)

	assert.Equal(t, int64(42), report.Tick)
	assert.Equal(t, 43, report.TrueTotalObserved)
	assert.Equal(t, 50, report.TrueTotalSystem)
	assert.Equal(t, 7, report.ItemsOnHiddenShelf)
	assert.Equal(t, 44.0, report.EstimatedTotal)
	assert.InDelta(t, 1.0, report.TotalError, 1e-9)
	assert.InDelta(t, 100.0/43.0, report.TotalErrorPct, 1e-9)
	assert.Equal(t, 3.5, report.KalmanUncertainty)
	assert.InDelta(t, 2.0/3.0, report.MAE, 1e-9)
	assert.Equal(t, 2, report.MaxStaleness)
}
