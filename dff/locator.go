package dff

import (
	"context"
	"fmt"

	"github.com/uyouii/dff-helpers/common"
	"github.com/uyouii/dff-helpers/model"
	"github.com/uyouii/dff-helpers/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Candidate names one place a dF/F series may be stored inside a plane.
type Candidate struct {
	DataInterface string
	Series        string
}

// Candidates lists the known dF/F locations, in lookup priority.
// The naming varies from plane to plane in the same recording.
var Candidates = []Candidate{
	{DataInterface: "DfOverF", Series: "deltaFoverF"},
	{DataInterface: "dff_timeseries", Series: "dff_timeseries"},
	{DataInterface: "dff", Series: "dff_timeseries"},
}

// LocateDff returns the timestamps and the T x C trace of the dF/F series of
// plane, using the first of Candidates present.
func LocateDff(ctx context.Context, src model.Source, plane string) ([]float64, *mat.Dense, error) {
	series, err := LocateSeries(ctx, src, plane, Candidates)
	if err != nil {
		return nil, nil, err
	}
	return series.Timestamps, series.Data, nil
}

func LocateSeries(ctx context.Context, src model.Source, plane string,
	candidates []Candidate) (*model.RoiResponseSeries, error) {
	ctx = utils.WithLogFields(ctx, zap.String("plane", plane))
	logger := utils.GetLogger(ctx)

	module, err := src.Processing(plane)
	if err != nil {
		logger.Error("get processing module failed", zap.Error(err))
		return nil, err
	}

	for _, candidate := range candidates {
		if !module.HasDataInterface(candidate.DataInterface) {
			continue
		}
		dataInterface, err := module.DataInterface(candidate.DataInterface)
		if err != nil {
			return nil, err
		}
		series, err := dataInterface.Series(candidate.Series)
		if err != nil {
			// the interface exists under another layout, keep looking
			logger.Debug("series missing in data interface",
				zap.String("dataInterface", candidate.DataInterface), zap.String("series", candidate.Series))
			continue
		}
		logger.Debug("found dff series", zap.String("dataInterface", candidate.DataInterface),
			zap.String("series", series.DebugString()))
		return series, nil
	}

	err = fmt.Errorf("%w: no dff series in plane %q", common.ErrorKeyNotFound, plane)
	logger.Error("locate dff failed", zap.Error(err), zap.Any("candidates", candidates))
	return nil, err
}

// ContainsInterface reports whether plane exists and has a data interface
// called name.
func ContainsInterface(src model.Source, plane, name string) bool {
	module, err := src.Processing(plane)
	if err != nil {
		return false
	}
	return module.HasDataInterface(name)
}
