// Package resample brings irregularly timed multi-channel traces onto a
// regular time axis.
//
// Each channel is fitted on its own and evaluated on
// TimeAxis(first, last, hz), which excludes the last timestamp. Outside the
// original timestamps every kind returns the first or last sample.
//
//   - [Nearest]: value of the closest sample, the earlier one on a tie (default)
//   - [Linear]:  gonum piecewise linear
//   - [Next]:    gonum piecewise constant, value of the next sample
package resample
