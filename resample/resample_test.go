package resample

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/dff-helpers/common"
	"gonum.org/v1/gonum/mat"
)

func TestTimeAxis(t *testing.T) {
	axis := TimeAxis(0, 5, 4)
	require.Len(t, axis, 20)
	assert.Equal(t, 0.0, axis[0])
	assert.Equal(t, 4.75, axis[19])

	// stop is excluded
	assert.Equal(t, []float64{2, 3, 4}, TimeAxis(2, 5, 1))
}

func TestInterpolateLength(t *testing.T) {
	ctx := context.Background()
	timestamps := []float64{0, 0.5, 2, 3.7, 5}
	trace := mat.NewDense(5, 3, nil)

	for _, hz := range []float64{1, 2, 4, 10} {
		res, err := InterpolateDff(ctx, trace, timestamps, hz)
		require.NoError(t, err)
		rows, cols := res.Dims()
		assert.Equal(t, int(math.Floor(5*hz)), rows, "hz=%v", hz)
		assert.Equal(t, 3, cols)
	}
}

func TestInterpolateOnGridKeepsSamples(t *testing.T) {
	ctx := context.Background()
	timestamps := make([]float64, 10)
	trace := mat.NewDense(10, 2, nil)
	for i := range timestamps {
		timestamps[i] = float64(i)
		trace.Set(i, 0, float64(i*i))
		trace.Set(i, 1, -float64(i))
	}

	res, err := InterpolateDff(ctx, trace, timestamps, 1)
	require.NoError(t, err)
	rows, _ := res.Dims()
	require.Equal(t, 9, rows)
	for i := 0; i < rows; i++ {
		assert.Equal(t, trace.At(i, 0), res.At(i, 0))
		assert.Equal(t, trace.At(i, 1), res.At(i, 1))
	}
}

func TestInterpolateNearest(t *testing.T) {
	ctx := context.Background()
	timestamps := []float64{0, 1, 3}
	trace := mat.NewDense(3, 2, []float64{
		10, 100,
		20, 200,
		30, 300,
	})

	res, err := Interpolate(ctx, trace, timestamps, 2, Nearest)
	require.NoError(t, err)

	// axis 0, 0.5, 1, 1.5, 2, 2.5; midpoints pick the earlier sample
	want := []float64{10, 10, 20, 20, 20, 30}
	rows, _ := res.Dims()
	require.Equal(t, len(want), rows)
	for i, w := range want {
		assert.Equal(t, w, res.At(i, 0), "row %v", i)
		assert.Equal(t, w*10, res.At(i, 1), "row %v", i)
	}
}

func TestNearestNeighborExtrapolates(t *testing.T) {
	nn := &NearestNeighbor{}
	require.NoError(t, nn.Fit([]float64{1, 2, 4}, []float64{5, 6, 7}))

	assert.Equal(t, 5.0, nn.Predict(-100))
	assert.Equal(t, 5.0, nn.Predict(1))
	assert.Equal(t, 7.0, nn.Predict(4))
	assert.Equal(t, 7.0, nn.Predict(1e9))
	assert.Equal(t, 6.0, nn.Predict(2.9))
	assert.Equal(t, 7.0, nn.Predict(3.1))
}

func TestNearestNeighborFitErrors(t *testing.T) {
	nn := &NearestNeighbor{}
	assert.ErrorIs(t, nn.Fit([]float64{1}, []float64{1}), common.ErrorTooFewPoints)
	assert.ErrorIs(t, nn.Fit([]float64{1, 1}, []float64{1, 2}), common.ErrorNotStrictlyIncreasing)
	assert.ErrorIs(t, nn.Fit([]float64{1, 2}, []float64{1}), common.ErrorShapeMismatch)
}

func TestInterpolateLinearAndNext(t *testing.T) {
	ctx := context.Background()
	timestamps := []float64{0, 2, 4}
	trace := mat.NewDense(3, 1, []float64{0, 2, 4})

	res, err := Interpolate(ctx, trace, timestamps, 2, Linear)
	require.NoError(t, err)
	rows, _ := res.Dims()
	require.Equal(t, 8, rows)
	for i := 0; i < rows; i++ {
		assert.InDelta(t, float64(i)/2, res.At(i, 0), 1e-12)
	}

	res, err = Interpolate(ctx, trace, timestamps, 1, Next)
	require.NoError(t, err)
	want := []float64{0, 2, 2, 4}
	for i, w := range want {
		assert.Equal(t, w, res.At(i, 0), "row %v", i)
	}
}

func TestInterpolateErrors(t *testing.T) {
	ctx := context.Background()
	trace := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err := InterpolateDff(ctx, trace, []float64{0, 1}, 10)
	assert.ErrorIs(t, err, common.ErrorShapeMismatch)

	_, err = InterpolateDff(ctx, trace, []float64{0, 2, 1}, 10)
	assert.ErrorIs(t, err, common.ErrorNotStrictlyIncreasing)

	_, err = InterpolateDff(ctx, mat.NewDense(1, 1, nil), []float64{0}, 10)
	assert.ErrorIs(t, err, common.ErrorTooFewPoints)

	_, err = InterpolateDff(ctx, trace, []float64{0, 1, 2}, -1)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = Interpolate(ctx, trace, []float64{0, 1, 2}, 10, Kind(42))
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestFitChannelRecoversPanic(t *testing.T) {
	// gonum fitters panic on mismatched lengths
	_, err := fitChannel(context.Background(), Linear, []float64{0, 1, 2}, []float64{0, 1})
	assert.ErrorIs(t, err, common.ErrorInterpolation)
}

func TestInterpolateDffDefaultRate(t *testing.T) {
	res, err := InterpolateDff(context.Background(), mat.NewDense(2, 1, []float64{1, 2}), []float64{0, 1}, 0)
	require.NoError(t, err)
	rows, _ := res.Dims()
	assert.Equal(t, int(DefaultInterpHz), rows)
	assert.Equal(t, 1.0, res.At(0, 0))
	assert.Equal(t, 2.0, res.At(rows-1, 0))
}
