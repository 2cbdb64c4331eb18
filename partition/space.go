// Package partition maintains a gapless, non-overlapping tiling of the grid
// canvas under incremental split and merge operations.
//
// Space is the sole owner of its regions. Regions reference each other only
// through RegionID handles in their per-side neighbor lists, and those lists
// are mutated exclusively by Space during split and merge.
package partition

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/tilecut/grid"
	"github.com/lixenwraith/tilecut/vmath"
)

// Space owns the full tiling and its grid
type Space struct {
	grid     *grid.Grid
	regions  map[RegionID]*Region
	renderer Renderer
	logger   *zap.Logger
	snap     bool
}

// Option configures a Space at construction
type Option func(*Space)

func WithRenderer(r Renderer) Option {
	return func(s *Space) {
		s.renderer = r
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Space) {
		s.logger = l.Named("partition")
	}
}

// WithSnap sets whether cut points are quantized to whole grid units
func WithSnap(snap bool) Option {
	return func(s *Space) {
		s.snap = snap
	}
}

// New creates a space holding a single region that spans the whole grid
func New(g *grid.Grid, opts ...Option) *Space {
	s := &Space{
		grid:     g,
		regions:  make(map[RegionID]*Region),
		renderer: NopRenderer{},
		logger:   zap.NewNop(),
		snap:     true,
	}
	for _, opt := range opts {
		opt(s)
	}

	root := &Region{id: newRegionID(), rect: g.Bounds(), space: s}
	s.add(root)
	s.renderer.Render(root)
	return s
}

func (s *Space) Grid() *grid.Grid {
	return s.grid
}

// Len returns the number of regions
func (s *Space) Len() int {
	return len(s.regions)
}

func (s *Space) Snapping() bool {
	return s.snap
}

func (s *Space) SetSnap(snap bool) {
	s.snap = snap
}

// Regions returns all regions ordered top to bottom, then left to right
func (s *Space) Regions() []*Region {
	out := make([]*Region, 0, len(s.regions))
	for _, r := range s.regions {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *Region) int {
		if c := cmp.Compare(vmath.Round(a.rect.Top), vmath.Round(b.rect.Top)); c != 0 {
			return c
		}
		return cmp.Compare(vmath.Round(a.rect.Left), vmath.Round(b.rect.Left))
	})
	return out
}

// Region resolves a handle
func (s *Space) Region(id RegionID) (*Region, bool) {
	r, ok := s.regions[id]
	return r, ok
}

// Neighbors resolves the handles adjacent to r on side
func (s *Space) Neighbors(r *Region, side Side) []*Region {
	out := make([]*Region, 0, len(r.neighbors[side]))
	for _, id := range r.neighbors[side] {
		if n, ok := s.regions[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// FocusedRegion returns the region under p, or nil when p is off the canvas.
// Linear scan; the half-open containment rule makes the hit unique.
func (s *Space) FocusedRegion(p vmath.Point) *Region {
	for _, r := range s.regions {
		if r.ContainsPoint(p.X, p.Y) {
			return r
		}
	}
	return nil
}

// Split divides the region under p along axis at p
func (s *Space) Split(p vmath.Point, axis Axis) (*Region, error) {
	return s.SplitRegion(s.FocusedRegion(p), axis, p)
}

// SplitRegion divides r with a cut along axis through cut. The original keeps
// the near side ([left, cut) or [top, cut)) and the newly created region,
// which is returned, takes the far side. On rejection nothing changes.
func (s *Space) SplitRegion(r *Region, axis Axis, cut vmath.Point) (*Region, error) {
	if !s.owns(r) {
		return nil, ErrNoRegion
	}

	if edge := r.NearestEdge(cut).Along(axis); vmath.Less(edge.Distance, s.grid.MinGap()) {
		return nil, fmt.Errorf("%w: %s edge at %g", ErrEdgeTooClose, edge.Side, vmath.Round(edge.Distance))
	}

	q := s.quantize(cut)
	orig := r.rect
	var near, far Patch
	switch axis {
	case AxisVertical:
		w := q.X - orig.Left
		near = Patch{Rect: vmath.Rect{Width: w}, Fields: FieldWidth}
		far = Patch{Rect: vmath.Rect{Left: orig.Left + w, Width: orig.Width - w}, Fields: FieldLeft | FieldWidth}
		if !s.validExtent(w, orig.Width) || !s.validExtent(orig.Width-w, orig.Width) {
			return nil, fmt.Errorf("%w: width %g of %g", ErrDegenerateCut, vmath.Round(w), orig.Width)
		}
	case AxisHorizontal:
		h := q.Y - orig.Top
		near = Patch{Rect: vmath.Rect{Height: h}, Fields: FieldHeight}
		far = Patch{Rect: vmath.Rect{Top: orig.Top + h, Height: orig.Height - h}, Fields: FieldTop | FieldHeight}
		if !s.validExtent(h, orig.Height) || !s.validExtent(orig.Height-h, orig.Height) {
			return nil, fmt.Errorf("%w: height %g of %g", ErrDegenerateCut, vmath.Round(h), orig.Height)
		}
	default:
		return nil, fmt.Errorf("%w: unknown axis %d", ErrDegenerateCut, axis)
	}

	candidates := r.neighborIDs()
	dup := r.duplicate()
	if err := r.resize(near); err != nil {
		s.remove(dup)
		return nil, err
	}
	if err := dup.resize(far); err != nil {
		r.rect = orig
		s.remove(dup)
		return nil, err
	}

	s.relink(r, append(slices.Clone(candidates), dup.id))
	s.relink(dup, append(candidates, r.id))

	s.renderer.Update(r, r.rect)
	s.renderer.Render(dup)

	s.logger.Debug("split",
		zap.Stringer("axis", axis),
		zap.Stringer("region", r),
		zap.Stringer("created", dup),
		zap.Int("regions", len(s.regions)),
	)
	return dup, nil
}

// RemoveEdge merges the region under p with the neighbor across its nearest edge
func (s *Space) RemoveEdge(p vmath.Point) (*Region, error) {
	return s.RemoveRegionEdge(s.FocusedRegion(p), p)
}

// RemoveRegionEdge removes the edge of r closest to p, merging r into the
// region on the other side. The merge is allowed only when that border spans
// the full length of both regions: r has exactly one neighbor on that side
// and the neighbor has exactly one on the opposite side. r is destroyed and
// the grown neighbor is returned. On rejection nothing changes.
func (s *Space) RemoveRegionEdge(r *Region, p vmath.Point) (*Region, error) {
	if !s.owns(r) {
		return nil, ErrNoRegion
	}

	edge := r.NearestEdge(p).Nearest()
	if vmath.Less(s.grid.MinGap(), edge.Distance) {
		return nil, fmt.Errorf("%w: nearest %s edge at %g", ErrEdgeTooFar, edge.Side, vmath.Round(edge.Distance))
	}

	ids := r.neighbors[edge.Side]
	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNoNeighbor, edge.Side)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d regions on %s", ErrAmbiguousMerge, len(ids), edge.Side)
	}

	other, ok := s.regions[ids[0]]
	if !ok {
		return nil, fmt.Errorf("%w: stale neighbor %s", ErrNoNeighbor, ids[0].Short())
	}
	if n := other.NeighborCount(edge.Side.Opposite()); n != 1 {
		return nil, fmt.Errorf("%w: %d regions on %s of neighbor", ErrAmbiguousMerge, n, edge.Side.Opposite())
	}

	a, b := r.rect, other.rect
	merged := vmath.Rect{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Width:  a.Width,
		Height: a.Height,
	}
	if edge.Side.Axis() == AxisVertical {
		if !vmath.Eq(a.Top, b.Top) || !vmath.Eq(a.Height, b.Height) {
			return nil, fmt.Errorf("%w: misaligned %v and %v", ErrAmbiguousMerge, a, b)
		}
		merged.Width = a.Width + b.Width
	} else {
		if !vmath.Eq(a.Left, b.Left) || !vmath.Eq(a.Width, b.Width) {
			return nil, fmt.Errorf("%w: misaligned %v and %v", ErrAmbiguousMerge, a, b)
		}
		merged.Height = a.Height + b.Height
	}

	var candidates []RegionID
	for _, id := range append(r.neighborIDs(), other.neighborIDs()...) {
		if id != r.id && id != other.id && !slices.Contains(candidates, id) {
			candidates = append(candidates, id)
		}
	}

	if err := other.resize(Patch{Rect: merged, Fields: FieldAll}); err != nil {
		return nil, err
	}
	s.detach(r)
	s.remove(r)
	s.relink(other, candidates)

	s.renderer.Destroy(r)
	s.renderer.Update(other, other.rect)

	s.logger.Debug("merge",
		zap.Stringer("side", edge.Side),
		zap.Stringer("removed", r),
		zap.Stringer("survivor", other),
		zap.Int("regions", len(s.regions)),
	)
	return other, nil
}

func (s *Space) owns(r *Region) bool {
	if r == nil {
		return false
	}
	held, ok := s.regions[r.id]
	return ok && held == r
}

func (s *Space) add(r *Region) {
	r.space = s
	s.regions[r.id] = r
}

func (s *Space) remove(r *Region) {
	delete(s.regions, r.id)
}

// quantize maps a requested cut point onto the grid, or onto the tolerance
// precision when snapping is off
func (s *Space) quantize(p vmath.Point) vmath.Point {
	if s.snap {
		return s.grid.Snap(p)
	}
	return p.Round()
}

// validExtent rejects children under one grid unit or within MinGap of the
// full extent of the region being split
func (s *Space) validExtent(extent, full float64) bool {
	return !vmath.Less(extent, 1) && !vmath.Less(full-s.grid.MinGap(), extent)
}
