package resample

import (
	"context"
	"fmt"

	"github.com/uyouii/dff-helpers/common"
	"github.com/uyouii/dff-helpers/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

type Kind int

const (
	Nearest Kind = iota
	Linear
	// Next takes the value of the first sample at or after x.
	Next
)

func (k Kind) String() string {
	switch k {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case Next:
		return "next"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func newPredictor(kind Kind) (interp.FittablePredictor, error) {
	switch kind {
	case Nearest:
		return &NearestNeighbor{}, nil
	case Linear:
		return &interp.PiecewiseLinear{}, nil
	case Next:
		return &interp.PiecewiseConstant{}, nil
	}
	return nil, fmt.Errorf("%w: interpolation kind %v", common.ErrorInvalidValue, kind)
}

// TimeAxis returns the regular time axis from start (included) to stop
// (excluded) at hz samples per second.
func TimeAxis(start, stop, hz float64) []float64 {
	return utils.Arange(start, stop, 1/hz)
}

// InterpolateDff resamples a T x C trace onto a regular axis at interpHz using
// nearest-neighbour interpolation. A zero interpHz selects DefaultInterpHz.
func InterpolateDff(ctx context.Context, trace *mat.Dense, timestamps []float64,
	interpHz float64) (*mat.Dense, error) {
	if interpHz == 0 {
		interpHz = getDefaultInterpHz()
	}
	return Interpolate(ctx, trace, timestamps, interpHz, getDefaultKind())
}

// Interpolate resamples trace channel by channel. The result has one row per
// point of TimeAxis(timestamps[0], timestamps[T-1], interpHz) and the same
// columns as trace.
func Interpolate(ctx context.Context, trace *mat.Dense, timestamps []float64,
	interpHz float64, kind Kind) (*mat.Dense, error) {
	logger := utils.GetLogger(ctx)

	if !(interpHz > 0) {
		return nil, fmt.Errorf("%w: interpolation rate %v", common.ErrorInvalidValue, interpHz)
	}
	rows, cols := trace.Dims()
	if rows != len(timestamps) {
		err := fmt.Errorf("%w: %v timestamps, trace has %v samples", common.ErrorShapeMismatch,
			len(timestamps), rows)
		logger.Error("interpolate failed", zap.Error(err))
		return nil, err
	}
	if err := checkTimestamps(timestamps); err != nil {
		logger.Error("interpolate failed", zap.Error(err))
		return nil, err
	}

	timeAxis := TimeAxis(timestamps[0], timestamps[len(timestamps)-1], interpHz)
	if len(timeAxis) == 0 {
		// only reachable with an infinite rate
		return nil, fmt.Errorf("%w: empty time axis", common.ErrorInvalidValue)
	}
	res := mat.NewDense(len(timeAxis), cols, nil)

	// one channel at a time keeps a single column copy alive
	channel := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(channel, j, trace)
		predictor, err := fitChannel(ctx, kind, timestamps, channel)
		if err != nil {
			logger.Error("fit channel failed", zap.Int("channel", j), zap.Stringer("kind", kind), zap.Error(err))
			return nil, err
		}
		for i, t := range timeAxis {
			res.Set(i, j, predictor.Predict(t))
		}
	}

	logger.Debug("interpolate trace success", zap.Int("samples", rows), zap.Int("channels", cols),
		zap.Int("resampled", len(timeAxis)), zap.Float64("hz", interpHz), zap.Stringer("kind", kind))
	return res, nil
}

// fitChannel turns panics from the gonum fitters into errors.
func fitChannel(ctx context.Context, kind Kind, xs, ys []float64) (predictor interp.Predictor, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("fitChannel recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			predictor = nil
			err = fmt.Errorf("%w: %v", common.ErrorInterpolation, r)
		}
	}()

	fp, err := newPredictor(kind)
	if err != nil {
		return nil, err
	}
	if err := fp.Fit(xs, ys); err != nil {
		return nil, err
	}
	return fp, nil
}
