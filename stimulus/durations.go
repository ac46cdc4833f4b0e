package stimulus

import (
	"context"
	"fmt"

	"github.com/uyouii/dff-helpers/common"
	"github.com/uyouii/dff-helpers/model"
	"github.com/uyouii/dff-helpers/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type DurationSummary struct {
	Stimulus                 string  `json:"stimulus"`
	MeanPresentationDuration float64 `json:"mean_presentation_duration"`
	Unit                     string  `json:"unit"`
}

// GetStimDurations returns the mean presentation duration of every interval
// table of src, in src.IntervalKeys order. An empty table has a NaN mean.
func GetStimDurations(ctx context.Context, src model.Source) ([]DurationSummary, error) {
	logger := utils.GetLogger(ctx)

	keys := src.IntervalKeys()
	res := make([]DurationSummary, 0, len(keys))
	for _, key := range keys {
		table, err := src.Interval(key)
		if err != nil {
			logger.Error("get interval table failed", zap.String("key", key), zap.Error(err))
			return nil, err
		}
		mean, err := meanDuration(table)
		if err != nil {
			logger.Error("mean duration failed", zap.String("key", key), zap.Error(err))
			return nil, err
		}
		res = append(res, DurationSummary{
			Stimulus:                 key,
			MeanPresentationDuration: mean,
			Unit:                     DurationUnit,
		})
	}

	logger.Debug("GetStimDurations success", zap.Int("tableCnt", len(res)))
	return res, nil
}

func meanDuration(table *model.IntervalTable) (float64, error) {
	start, err := table.Column(model.ColumnStartTime)
	if err != nil {
		return 0, err
	}
	stop, err := table.Column(model.ColumnStopTime)
	if err != nil {
		return 0, err
	}
	if len(start) != len(stop) {
		return 0, fmt.Errorf("%w: %v start times, %v stop times in %q",
			common.ErrorShapeMismatch, len(start), len(stop), table.Name)
	}
	durations := make([]float64, len(stop))
	floats.SubTo(durations, stop, start)
	return stat.Mean(durations, nil), nil
}
