// Package grid quantizes the canvas into rows and columns of unit cells and
// converts between grid units and canvas percentages.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/tilecut/vmath"
)

// DefaultMinGap is half of one grid cell
const DefaultMinGap = 0.5

var ErrInvalidDimensions = errors.New("grid: invalid dimensions")

// Grid is a fixed rows x cols quantization of the canvas
type Grid struct {
	rows, cols int
	minGap     float64
}

// Option configures a Grid at construction
type Option func(*Grid)

// WithMinGap overrides the minimum distance between two cut lines, in grid units
func WithMinGap(gap float64) Option {
	return func(g *Grid) {
		g.minGap = gap
	}
}

// New creates a grid with the given number of rows and columns
func New(rows, cols int, opts ...Option) (*Grid, error) {
	g := &Grid{
		rows:   rows,
		cols:   cols,
		minGap: DefaultMinGap,
	}
	for _, opt := range opts {
		opt(g)
	}

	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if g.minGap <= 0 || g.minGap >= 1 {
		return nil, fmt.Errorf("%w: min gap %g outside (0, 1)", ErrInvalidDimensions, g.minGap)
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// MinGap returns the rejection threshold for split and merge proximity checks
func (g *Grid) MinGap() float64 { return g.minGap }

// Bounds returns the full canvas in grid units
func (g *Grid) Bounds() vmath.Rect {
	return vmath.R(0, 0, float64(g.cols), float64(g.rows))
}

// ToPercentage scales a rect in grid units to percentages of the canvas
func (g *Grid) ToPercentage(r vmath.Rect) vmath.Rect {
	cols, rows := float64(g.cols), float64(g.rows)
	return vmath.Rect{
		Left:   r.Left / cols * 100,
		Top:    r.Top / rows * 100,
		Width:  r.Width / cols * 100,
		Height: r.Height / rows * 100,
	}
}

// FromPercentage is the inverse of ToPercentage
func (g *Grid) FromPercentage(r vmath.Rect) vmath.Rect {
	cols, rows := float64(g.cols), float64(g.rows)
	return vmath.Rect{
		Left:   r.Left / 100 * cols,
		Top:    r.Top / 100 * rows,
		Width:  r.Width / 100 * cols,
		Height: r.Height / 100 * rows,
	}
}

// Snap rounds each axis to the nearest grid line
func (g *Grid) Snap(p vmath.Point) vmath.Point {
	return vmath.Pt(math.Round(p.X), math.Round(p.Y))
}

// Clamp limits p to the canvas
func (g *Grid) Clamp(p vmath.Point) vmath.Point {
	return vmath.Pt(
		vmath.Clamp(p.X, 0, float64(g.cols)),
		vmath.Clamp(p.Y, 0, float64(g.rows)),
	)
}
