package zscore

import (
	"fmt"

	"github.com/uyouii/dff-helpers/common"
)

// Axis names a dimension of a Window.
type Axis int

const (
	ChannelAxis Axis = iota
	TimeAxis
	TrialAxis
)

func (a Axis) String() string {
	switch a {
	case ChannelAxis:
		return "channel"
	case TimeAxis:
		return "time"
	case TrialAxis:
		return "trial"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Window holds stimulus-locked snippets, channel x time x trial, row-major.
type Window struct {
	shape [3]int
	data  []float64
}

func NewWindow(channels, samples, trials int) *Window {
	if channels <= 0 || samples <= 0 || trials <= 0 {
		panic(fmt.Sprintf("zscore: invalid window shape (%v, %v, %v)", channels, samples, trials))
	}
	return &Window{
		shape: [3]int{channels, samples, trials},
		data:  make([]float64, channels*samples*trials),
	}
}

// NewWindowFromRows builds a single-trial window from one slice per channel.
func NewWindowFromRows(rows [][]float64) (*Window, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty window", common.ErrorInvalidValue)
	}
	w := NewWindow(len(rows), len(rows[0]), 1)
	for c, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: channel %v has %v samples, want %v",
				common.ErrorShapeMismatch, c, len(row), len(rows[0]))
		}
		for t, v := range row {
			w.Set(c, t, 0, v)
		}
	}
	return w, nil
}

func (w *Window) Dims() (channels, samples, trials int) {
	return w.shape[0], w.shape[1], w.shape[2]
}

func (w *Window) Len(axis Axis) int {
	return w.shape[axis]
}

func (w *Window) index(c, t, k int) int {
	if c < 0 || c >= w.shape[0] || t < 0 || t >= w.shape[1] || k < 0 || k >= w.shape[2] {
		panic(fmt.Sprintf("zscore: index (%v, %v, %v) out of range %v", c, t, k, w.shape))
	}
	return (c*w.shape[1]+t)*w.shape[2] + k
}

func (w *Window) At(c, t, k int) float64 {
	return w.data[w.index(c, t, k)]
}

func (w *Window) Set(c, t, k int, v float64) {
	w.data[w.index(c, t, k)] = v
}

// Trace copies the time course of one channel in one trial.
func (w *Window) Trace(c, k int) []float64 {
	res := make([]float64, w.shape[1])
	for t := range res {
		res[t] = w.At(c, t, k)
	}
	return res
}

func (w *Window) setTrace(c, k int, values []float64) {
	for t, v := range values {
		w.Set(c, t, k, v)
	}
}
