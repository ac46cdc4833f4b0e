package model

import (
	"fmt"

	"github.com/uyouii/dff-helpers/common"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NwbFile is an in-memory Source, filled by whatever reader loaded the file.
type NwbFile struct {
	Modules   map[string]*ProcessingModule
	Intervals map[string]*IntervalTable
}

func NewNwbFile() *NwbFile {
	return &NwbFile{
		Modules:   map[string]*ProcessingModule{},
		Intervals: map[string]*IntervalTable{},
	}
}

func (f *NwbFile) Processing(plane string) (*ProcessingModule, error) {
	module, ok := f.Modules[plane]
	if !ok {
		return nil, fmt.Errorf("%w: processing module %q", common.ErrorKeyNotFound, plane)
	}
	return module, nil
}

// IntervalKeys returns the interval table keys sorted ascending.
func (f *NwbFile) IntervalKeys() []string {
	keys := maps.Keys(f.Intervals)
	slices.Sort(keys)
	return keys
}

func (f *NwbFile) Interval(key string) (*IntervalTable, error) {
	table, ok := f.Intervals[key]
	if !ok {
		return nil, fmt.Errorf("%w: interval table %q", common.ErrorKeyNotFound, key)
	}
	return table, nil
}

// AddSeries stores series under plane/dataInterface, creating the
// intermediate levels when missing.
func (f *NwbFile) AddSeries(plane, dataInterface string, series *RoiResponseSeries) {
	module, ok := f.Modules[plane]
	if !ok {
		module = &ProcessingModule{Name: plane, DataInterfaces: map[string]*DataInterface{}}
		f.Modules[plane] = module
	}
	di, ok := module.DataInterfaces[dataInterface]
	if !ok {
		di = &DataInterface{Name: dataInterface, RoiResponseSeries: map[string]*RoiResponseSeries{}}
		module.DataInterfaces[dataInterface] = di
	}
	di.RoiResponseSeries[series.Name] = series
}

func (f *NwbFile) AddInterval(table *IntervalTable) {
	f.Intervals[table.Name] = table
}
