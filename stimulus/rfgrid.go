package stimulus

import (
	"fmt"
	"math"

	"github.com/uyouii/dff-helpers/common"
	"github.com/uyouii/dff-helpers/model"
	"gonum.org/v1/gonum/mat"
)

// GetRFCoords maps a receptive field stimulus position to its display grid
// cell. Positions off the grid give indices outside [0, 8]; nothing is
// clamped.
func GetRFCoords(xPos, yPos float64) (col, row int) {
	col = int(math.Floor(xPos/rfCellSize + rfGridOffset))
	row = int(math.Floor(-(yPos/rfCellSize - rfGridOffset)))
	return col, row
}

// GetDisplayMask counts the presentations of table per display grid cell.
// The result is indexed (row, col).
func GetDisplayMask(table *model.IntervalTable) (*mat.Dense, error) {
	xs, err := table.Column(model.ColumnXPosition)
	if err != nil {
		return nil, err
	}
	ys, err := table.Column(model.ColumnYPosition)
	if err != nil {
		return nil, err
	}

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %v x positions, %v y positions in %q",
			common.ErrorShapeMismatch, len(xs), len(ys), table.Name)
	}

	mask := mat.NewDense(DisplayGridSize, DisplayGridSize, nil)
	for i := range xs {
		col, row := GetRFCoords(xs[i], ys[i])
		if !onGrid(col) || !onGrid(row) {
			return nil, fmt.Errorf("%w: row %v of %q at (%v, %v) maps to cell (%v, %v)",
				common.ErrorOutOfGrid, i, table.Name, xs[i], ys[i], row, col)
		}
		mask.Set(row, col, mask.At(row, col)+1)
	}
	return mask, nil
}

func onGrid(i int) bool {
	return i >= 0 && i < DisplayGridSize
}
