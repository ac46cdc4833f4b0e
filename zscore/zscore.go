package zscore

import (
	"fmt"

	"github.com/uyouii/dff-helpers/common"
	"github.com/uyouii/dff-helpers/utils"
	"gonum.org/v1/gonum/stat"
)

// ZScore expresses every trace of window in units of its own standard
// deviation, relative to the mean of its first stimIdx samples.
//
// The baseline mean skips NaN samples and is NaN when the baseline is empty.
// The standard deviation is the population one over the whole trace, not the
// baseline only, and NaN samples propagate into it. A flat trace gives NaN
// where it equals its baseline and +/-Inf elsewhere.
func ZScore(window *Window, stimIdx int) (*Window, error) {
	channels, samples, trials := window.Dims()
	if stimIdx < 0 || stimIdx > samples {
		return nil, fmt.Errorf("%w: stim index %v outside [0, %v]", common.ErrorInvalidValue, stimIdx, samples)
	}

	res := NewWindow(channels, samples, trials)
	for c := 0; c < channels; c++ {
		for k := 0; k < trials; k++ {
			trace := window.Trace(c, k)
			baselineMean := utils.NanMean(trace[:stimIdx])
			stddev := stat.PopStdDev(trace, nil)
			for t := range trace {
				trace[t] = (trace[t] - baselineMean) / stddev
			}
			res.setTrace(c, k, trace)
		}
	}
	return res, nil
}
