package sim

// Measurement-noise constants for the total-inventory filter. The base term
// models raw observation error; the staleness weight inflates R as the
// components of the composite measurement age, so the filter trusts a
// patchwork of old readings less than a fresh one.
const (
	baseMeasurementNoise = 10.0
	stalenessNoiseWeight = 0.5
)

// ScalarKalmanFilter is a one-dimensional Kalman filter tracking the aggregate
// quantity across all observable shelves. The state is assumed stationary
// between updates apart from process noise Q.
type ScalarKalmanFilter struct {
	x float64 // current estimate of the observable total
	p float64 // estimate covariance
	q float64 // process noise, constant per run
}

// NewScalarKalmanFilter creates a filter with a naive zero estimate and high
// initial uncertainty. The filter is never reset during a run.
func NewScalarKalmanFilter(processNoise float64) *ScalarKalmanFilter {
	return &ScalarKalmanFilter{
		x: 0.0,
		p: 1000.0,
		q: processNoise,
	}
}

// Update runs one predict/correct cycle against measurement z with measurement
// noise r, and returns the corrected estimate. The gain K = P/(P+R) always
// lies in [0, 1] because the predicted covariance and r are both non-negative.
func (kf *ScalarKalmanFilter) Update(z, r float64) float64 {
	// Predict: the total is stationary apart from process noise.
	pPred := kf.p + kf.q

	// Correct.
	innovation := z - kf.x
	gain := pPred / (pPred + r)
	kf.x += gain * innovation
	kf.p = (1 - gain) * pPred

	return kf.x
}

// Estimate returns the current state estimate.
func (kf *ScalarKalmanFilter) Estimate() float64 {
	return kf.x
}

// Covariance returns the current estimate covariance.
func (kf *ScalarKalmanFilter) Covariance() float64 {
	return kf.p
}
