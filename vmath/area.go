package vmath

import "fmt"

// Point is a position in grid units
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Round rounds both axes to Precision
func (p Point) Round() Point {
	return Point{Round(p.X), Round(p.Y)}
}

func (p Point) Eq(q Point) bool {
	return Eq(p.X, q.X) && Eq(p.Y, q.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// It contains the points with Left <= X < Right, Top <= Y < Bottom.
type Rect struct {
	Left, Top, Width, Height float64
}

// R is shorthand for Rect{left, top, width, height}
func R(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

func (r Rect) Right() float64 {
	return r.Left + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Empty reports whether either extent is not positive
func (r Rect) Empty() bool {
	return !Less(0, r.Width) || !Less(0, r.Height)
}

// Contains reports whether p lies inside r; left and top edges are
// inclusive, right and bottom edges exclusive
func (r Rect) Contains(p Point) bool {
	return LessEq(r.Left, p.X) && Less(p.X, r.Right()) &&
		LessEq(r.Top, p.Y) && Less(p.Y, r.Bottom())
}

// Overlaps reports whether the interiors of r and s intersect
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		Overlaps(r.Left, r.Right(), s.Left, s.Right()) &&
		Overlaps(r.Top, r.Bottom(), s.Top, s.Bottom())
}

// In reports whether r lies entirely inside s
func (r Rect) In(s Rect) bool {
	return LessEq(s.Left, r.Left) && LessEq(r.Right(), s.Right()) &&
		LessEq(s.Top, r.Top) && LessEq(r.Bottom(), s.Bottom())
}

// Eq compares all four fields within tolerance
func (r Rect) Eq(s Rect) bool {
	return Eq(r.Left, s.Left) && Eq(r.Top, s.Top) &&
		Eq(r.Width, s.Width) && Eq(r.Height, s.Height)
}

// Round rounds all four fields to Precision
func (r Rect) Round() Rect {
	return Rect{Round(r.Left), Round(r.Top), Round(r.Width), Round(r.Height)}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g,%g,%g]", Round(r.Left), Round(r.Top), Round(r.Width), Round(r.Height))
}
