package utils

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Arange returns start, start+step, ... up to but excluding stop.
// The number of points is ceil((stop-start)/step), as numpy computes it.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 || !(stop > start) {
		return []float64{}
	}
	num := int(math.Ceil((stop - start) / step))
	res := make([]float64, num)
	for i := 0; i < num; i++ {
		res[i] = start + float64(i)*step
	}
	return res
}

// NanMean is the mean of the non-NaN values of x, NaN when there are none.
func NanMean(x []float64) float64 {
	values := make([]float64, 0, len(x))
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}
