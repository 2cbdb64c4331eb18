package partition

import (
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/lixenwraith/tilecut/vmath"
)

// RegionID is a non-owning handle to a region held by a Space
type RegionID uuid.UUID

func newRegionID() RegionID {
	return RegionID(uuid.New())
}

func (id RegionID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits, enough to tell regions apart in logs
func (id RegionID) Short() string {
	return id.String()[:8]
}

// Edges holds the grid coordinate of each side of a region
type Edges struct {
	Left, Top, Right, Bottom float64
}

// Edge is the distance from a point to one side of a region
type Edge struct {
	Side     Side
	Distance float64
}

// EdgeDistances holds the closer of the left/right pair (Vertical) and the
// closer of the top/bottom pair (Horizontal)
type EdgeDistances struct {
	Horizontal Edge
	Vertical   Edge
}

// Nearest returns the overall closest edge; ties go to the horizontal pair
func (d EdgeDistances) Nearest() Edge {
	if d.Horizontal.Distance > d.Vertical.Distance {
		return d.Vertical
	}
	return d.Horizontal
}

// Along returns the edge pair a cut along axis competes with
func (d EdgeDistances) Along(axis Axis) Edge {
	if axis == AxisVertical {
		return d.Vertical
	}
	return d.Horizontal
}

// Field selects which fields of a Patch are applied
type Field uint8

const (
	FieldLeft Field = 1 << iota
	FieldTop
	FieldWidth
	FieldHeight

	FieldAll = FieldLeft | FieldTop | FieldWidth | FieldHeight
)

// Patch is a partial rectangle update
type Patch struct {
	Rect   vmath.Rect
	Fields Field
}

// Region is one tile of the partition. Its neighbor lists are non-owning
// handles resolved through the owning Space.
type Region struct {
	id        RegionID
	rect      vmath.Rect
	neighbors [4][]RegionID
	space     *Space
}

func (r *Region) ID() RegionID {
	return r.id
}

// Rect returns the region's rectangle in grid units
func (r *Region) Rect() vmath.Rect {
	return r.rect
}

func (r *Region) Edges() Edges {
	return Edges{
		Left:   r.rect.Left,
		Top:    r.rect.Top,
		Right:  r.rect.Right(),
		Bottom: r.rect.Bottom(),
	}
}

// Neighbors returns a copy of the handles adjacent on side
func (r *Region) Neighbors(side Side) []RegionID {
	return slices.Clone(r.neighbors[side])
}

func (r *Region) NeighborCount(side Side) int {
	return len(r.neighbors[side])
}

// ContainsPoint reports whether (x, y) lies in the region. A point on a shared
// internal edge belongs only to the region whose left or top edge it is.
func (r *Region) ContainsPoint(x, y float64) bool {
	return r.rect.Contains(vmath.Pt(x, y))
}

// NearestEdge measures p against all four edges
func (r *Region) NearestEdge(p vmath.Point) EdgeDistances {
	e := r.Edges()
	d := EdgeDistances{
		Horizontal: Edge{Side: SideTop, Distance: math.Inf(1)},
		Vertical:   Edge{Side: SideLeft, Distance: math.Inf(1)},
	}

	if dist := math.Abs(e.Left - p.X); dist < d.Vertical.Distance {
		d.Vertical = Edge{Side: SideLeft, Distance: dist}
	}
	if dist := math.Abs(e.Top - p.Y); dist < d.Horizontal.Distance {
		d.Horizontal = Edge{Side: SideTop, Distance: dist}
	}
	if dist := math.Abs(e.Right - p.X); dist < d.Vertical.Distance {
		d.Vertical = Edge{Side: SideRight, Distance: dist}
	}
	if dist := math.Abs(e.Bottom - p.Y); dist < d.Horizontal.Distance {
		d.Horizontal = Edge{Side: SideBottom, Distance: dist}
	}
	return d
}

// IsTouching reports whether r and other share a collinear edge segment of
// positive length. Corner contact is not adjacency.
func (r *Region) IsTouching(other *Region) bool {
	_, ok := touchingSide(r.rect, other.rect)
	return ok
}

func (r *Region) String() string {
	return fmt.Sprintf("%s%v", r.id.Short(), r.rect)
}

// resize applies the selected fields of p. An update leaving the region
// empty is refused and the rectangle is left as it was.
func (r *Region) resize(p Patch) error {
	next := r.rect
	if p.Fields&FieldLeft != 0 {
		next.Left = p.Rect.Left
	}
	if p.Fields&FieldTop != 0 {
		next.Top = p.Rect.Top
	}
	if p.Fields&FieldWidth != 0 {
		next.Width = p.Rect.Width
	}
	if p.Fields&FieldHeight != 0 {
		next.Height = p.Rect.Height
	}

	if next.Empty() {
		return fmt.Errorf("%w: %v -> %v", ErrInvalidRect, r.rect, next)
	}
	r.rect = next
	return nil
}

// duplicate registers a copy of r with the same rectangle and a shallow copy
// of its neighbor lists
func (r *Region) duplicate() *Region {
	d := &Region{
		id:    newRegionID(),
		rect:  r.rect,
		space: r.space,
	}
	for i := range r.neighbors {
		d.neighbors[i] = slices.Clone(r.neighbors[i])
	}
	r.space.add(d)
	return d
}

func (r *Region) hasNeighbor(side Side, id RegionID) bool {
	return slices.Contains(r.neighbors[side], id)
}

func (r *Region) addNeighbor(side Side, id RegionID) {
	if !r.hasNeighbor(side, id) {
		r.neighbors[side] = append(r.neighbors[side], id)
	}
}

func (r *Region) removeNeighbor(side Side, id RegionID) {
	r.neighbors[side] = slices.DeleteFunc(r.neighbors[side], func(n RegionID) bool {
		return n == id
	})
}

// neighborIDs returns the distinct handles across all sides
func (r *Region) neighborIDs() []RegionID {
	var ids []RegionID
	for _, side := range Sides {
		for _, id := range r.neighbors[side] {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// touchingSide returns the side of a on which b lies, if the two share an
// edge segment of positive length
func touchingSide(a, b vmath.Rect) (Side, bool) {
	overlapY := vmath.Overlaps(a.Top, a.Bottom(), b.Top, b.Bottom())
	overlapX := vmath.Overlaps(a.Left, a.Right(), b.Left, b.Right())

	switch {
	case overlapY && vmath.Eq(a.Right(), b.Left):
		return SideRight, true
	case overlapY && vmath.Eq(a.Left, b.Right()):
		return SideLeft, true
	case overlapX && vmath.Eq(a.Bottom(), b.Top):
		return SideBottom, true
	case overlapX && vmath.Eq(a.Top, b.Bottom()):
		return SideTop, true
	}
	return 0, false
}
