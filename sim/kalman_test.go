package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarKalmanFilter_InitialState(t *testing.T) {
	kf := NewScalarKalmanFilter(0.1)
	assert.Equal(t, 0.0, kf.Estimate())
	assert.Equal(t, 1000.0, kf.Covariance())
}

func TestScalarKalmanFilter_FirstUpdateStronglyCorrective(t *testing.T) {
	// With a naive prior (x=0, P=1000) and a first measurement z=100 at R=10,
	// the gain is ~0.99: the estimate jumps to ~99 and the covariance
	// collapses to ~10.
	kf := NewScalarKalmanFilter(0.1)
	estimate := kf.Update(100, 10)

	assert.InDelta(t, 99.0, estimate, 0.2)
	assert.InDelta(t, 99.0, kf.Estimate(), 0.2)
	assert.InDelta(t, 9.9, kf.Covariance(), 0.2)
}

func TestScalarKalmanFilter_GainBoundsAndCovariancePositivity(t *testing.T) {
	// The corrected estimate always lands between the prior and the
	// measurement (gain in [0,1]) and the covariance never goes negative.
	kf := NewScalarKalmanFilter(0.5)
	measurements := []struct{ z, r float64 }{
		{100, 10}, {80, 50}, {120, 0}, {0, 1000}, {250, 12.5}, {250, 12.5}, {-40, 3},
	}

	for i, m := range measurements {
		prior := kf.Estimate()
		estimate := kf.Update(m.z, m.r)

		low, high := prior, m.z
		if low > high {
			low, high = high, low
		}
		assert.GreaterOrEqual(t, estimate, low, "update %d: estimate overshot below", i)
		assert.LessOrEqual(t, estimate, high, "update %d: estimate overshot above", i)
		assert.GreaterOrEqual(t, kf.Covariance(), 0.0, "update %d: negative covariance", i)
	}
}

func TestScalarKalmanFilter_ConvergesOnConstantSignal(t *testing.T) {
	kf := NewScalarKalmanFilter(0.1)
	for i := 0; i < 50; i++ {
		kf.Update(200, 10)
	}
	assert.InDelta(t, 200.0, kf.Estimate(), 0.5)
	assert.Less(t, kf.Covariance(), 5.0, "covariance must settle well below its initial value")
}

func TestScalarKalmanFilter_ZeroProcessNoiseShrinksCovariance(t *testing.T) {
	kf := NewScalarKalmanFilter(0)
	previous := kf.Covariance()
	for i := 0; i < 20; i++ {
		kf.Update(50, 25)
		assert.LessOrEqual(t, kf.Covariance(), previous, "with Q=0 covariance must never grow")
		previous = kf.Covariance()
	}
}

func TestScalarKalmanFilter_ProcessNoiseKeepsFilterResponsive(t *testing.T) {
	// A higher Q holds the steady-state gain higher, so the filter tracks a
	// moving signal more closely than a near-static filter does.
	sluggish := NewScalarKalmanFilter(0.01)
	responsive := NewScalarKalmanFilter(5.0)

	// Settle both on a constant signal first.
	for i := 0; i < 100; i++ {
		sluggish.Update(100, 10)
		responsive.Update(100, 10)
	}
	// Then step the signal.
	for i := 0; i < 10; i++ {
		sluggish.Update(150, 10)
		responsive.Update(150, 10)
	}

	sluggishErr := 150 - sluggish.Estimate()
	responsiveErr := 150 - responsive.Estimate()
	assert.Less(t, responsiveErr, sluggishErr,
		"higher process noise must adapt to the step faster")
}
