// Package zscore cuts stimulus-locked windows out of a trace and normalizes
// them against their pre-stimulus baseline.
package zscore
