package model

import (
	"fmt"

	"github.com/uyouii/dff-helpers/common"
	"gonum.org/v1/gonum/mat"
)

// RoiResponseSeries is one fluorescence series: Data holds one row per
// timestamp and one column per ROI.
type RoiResponseSeries struct {
	Name       string
	Timestamps []float64
	Data       *mat.Dense
}

func (s *RoiResponseSeries) DebugString() string {
	rows, cols := 0, 0
	if s.Data != nil {
		rows, cols = s.Data.Dims()
	}
	res := fmt.Sprintf("name: %v, timestampCount: %v, shape: (%v, %v)", s.Name, len(s.Timestamps), rows, cols)
	return res
}

func (s *RoiResponseSeries) IsEmpty() bool {
	if s == nil || s.Data == nil {
		return true
	}
	return len(s.Timestamps) == 0
}

type DataInterface struct {
	Name              string
	RoiResponseSeries map[string]*RoiResponseSeries
}

func (d *DataInterface) Series(name string) (*RoiResponseSeries, error) {
	series, ok := d.RoiResponseSeries[name]
	if !ok {
		return nil, fmt.Errorf("%w: roi response series %q in %q", common.ErrorKeyNotFound, name, d.Name)
	}
	return series, nil
}

// ProcessingModule groups the data interfaces of one imaging plane.
type ProcessingModule struct {
	Name           string
	DataInterfaces map[string]*DataInterface
}

func (p *ProcessingModule) DataInterface(name string) (*DataInterface, error) {
	dataInterface, ok := p.DataInterfaces[name]
	if !ok {
		return nil, fmt.Errorf("%w: data interface %q in %q", common.ErrorKeyNotFound, name, p.Name)
	}
	return dataInterface, nil
}

func (p *ProcessingModule) HasDataInterface(name string) bool {
	_, ok := p.DataInterfaces[name]
	return ok
}

// Source is the read-only view of a recording the helpers work on.
type Source interface {
	Processing(plane string) (*ProcessingModule, error)
	// IntervalKeys lists the interval tables in a stable order.
	IntervalKeys() []string
	Interval(key string) (*IntervalTable, error)
}
