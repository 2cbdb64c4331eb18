package input

import (
	"image"
	"math"

	"github.com/lixenwraith/tilecut/grid"
	"github.com/lixenwraith/tilecut/vmath"
)

// Mapper converts between terminal cells and grid units. Grid line 0 sits
// on the first cell of Canvas and the last grid line on the last cell, so
// borders of adjacent regions share one cell.
type Mapper struct {
	Canvas image.Rectangle
	Grid   *grid.Grid
}

// Contains reports whether the cell lies on the canvas
func (m Mapper) Contains(x, y int) bool {
	return image.Pt(x, y).In(m.Canvas)
}

// GridPos returns the grid position of a cell, clamped to the canvas
func (m Mapper) GridPos(x, y int) vmath.Point {
	p := vmath.Pt(
		scale(x-m.Canvas.Min.X, m.Canvas.Dx()-1, m.Grid.Cols()),
		scale(y-m.Canvas.Min.Y, m.Canvas.Dy()-1, m.Grid.Rows()),
	)
	return m.Grid.Clamp(p).Round()
}

// Cell returns the cell that displays grid position p
func (m Mapper) Cell(p vmath.Point) image.Point {
	return image.Pt(m.CellX(p.X), m.CellY(p.Y))
}

// CellX returns the column for grid x
func (m Mapper) CellX(x float64) int {
	return m.Canvas.Min.X + project(x, m.Grid.Cols(), m.Canvas.Dx()-1)
}

// CellY returns the row for grid y
func (m Mapper) CellY(y float64) int {
	return m.Canvas.Min.Y + project(y, m.Grid.Rows(), m.Canvas.Dy()-1)
}

func scale(offset, span, units int) float64 {
	if span <= 0 {
		return 0
	}
	return float64(offset) / float64(span) * float64(units)
}

func project(v float64, units, span int) int {
	if span <= 0 {
		return 0
	}
	return int(math.Round(v / float64(units) * float64(span)))
}
