package resample

import (
	"fmt"
	"sort"

	"github.com/uyouii/dff-helpers/common"
)

// NearestNeighbor predicts the y of the closest x. On an exact midpoint the
// earlier sample wins. Outside the fitted range the first or last y is
// returned.
type NearestNeighbor struct {
	// midpoints between neighbouring xs, len(ys)-1 values
	bounds []float64
	ys     []float64
}

func (nn *NearestNeighbor) Fit(xs, ys []float64) error {
	if err := checkTimestamps(xs); err != nil {
		return err
	}
	n := len(xs)
	if len(ys) != n {
		return fmt.Errorf("%w: %v timestamps, %v values", common.ErrorShapeMismatch, n, len(ys))
	}

	nn.bounds = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		nn.bounds[i] = xs[i]/2 + xs[i+1]/2
	}
	nn.ys = make([]float64, n)
	copy(nn.ys, ys)
	return nil
}

func (nn *NearestNeighbor) Predict(x float64) float64 {
	// number of bounds strictly below x
	i := sort.SearchFloat64s(nn.bounds, x)
	return nn.ys[i]
}

func checkTimestamps(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("%w: got %v", common.ErrorTooFewPoints, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("%w: timestamps[%v]=%v, timestamps[%v]=%v",
				common.ErrorNotStrictlyIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}
	return nil
}
