package model

import (
	"fmt"

	"github.com/uyouii/dff-helpers/common"
)

const (
	ColumnStartTime = "start_time"
	ColumnStopTime  = "stop_time"
	ColumnXPosition = "x_position"
	ColumnYPosition = "y_position"
)

// IntervalTable is a stimulus table: one row per presentation, one float64
// slice per named column.
type IntervalTable struct {
	Name    string
	Columns map[string][]float64
}

func NewIntervalTable(name string) *IntervalTable {
	return &IntervalTable{
		Name:    name,
		Columns: map[string][]float64{},
	}
}

// AddColumn sets a column. All columns of a table must have the same length.
func (t *IntervalTable) AddColumn(name string, values []float64) error {
	if n, ok := t.numRows(); ok && n != len(values) {
		return fmt.Errorf("%w: column %q has %v rows, table %q has %v",
			common.ErrorShapeMismatch, name, len(values), t.Name, n)
	}
	t.Columns[name] = values
	return nil
}

func (t *IntervalTable) Column(name string) ([]float64, error) {
	values, ok := t.Columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: column %q in %q", common.ErrorKeyNotFound, name, t.Name)
	}
	return values, nil
}

func (t *IntervalTable) NumRows() int {
	n, _ := t.numRows()
	return n
}

func (t *IntervalTable) numRows() (int, bool) {
	for _, values := range t.Columns {
		return len(values), true
	}
	return 0, false
}
