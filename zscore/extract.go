package zscore

import (
	"fmt"
	"sort"

	"github.com/uyouii/dff-helpers/common"
	"gonum.org/v1/gonum/mat"
)

// ExtractWindows cuts trace[onset-before : onset+after] for every onset into a
// C x (before+after) x len(onsets) window. The stimulus index of the result,
// as ZScore expects it, is before.
func ExtractWindows(trace *mat.Dense, onsets []int, before, after int) (*Window, error) {
	if before < 0 || after < 0 || before+after == 0 {
		return nil, fmt.Errorf("%w: window before=%v after=%v", common.ErrorInvalidValue, before, after)
	}
	if len(onsets) == 0 {
		return nil, fmt.Errorf("%w: no onsets", common.ErrorInvalidValue)
	}

	samples, channels := trace.Dims()
	for _, onset := range onsets {
		if onset-before < 0 || onset+after > samples {
			return nil, fmt.Errorf("%w: window around onset %v exceeds trace of %v samples",
				common.ErrorInvalidValue, onset, samples)
		}
	}

	res := NewWindow(channels, before+after, len(onsets))
	for k, onset := range onsets {
		for t := 0; t < before+after; t++ {
			row := trace.RawRowView(onset - before + t)
			for c := 0; c < channels; c++ {
				res.Set(c, t, k, row[c])
			}
		}
	}
	return res, nil
}

// OnsetIndices returns, for each onset time, the index of the first sample of
// the ascending timeAxis at or after it. Onsets past the end map to
// len(timeAxis).
func OnsetIndices(timeAxis, onsetTimes []float64) []int {
	res := make([]int, len(onsetTimes))
	for i, onset := range onsetTimes {
		res[i] = sort.SearchFloat64s(timeAxis, onset)
	}
	return res
}
