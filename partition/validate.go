package partition

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/tilecut/vmath"
)

// Validate checks the tiling invariant and the adjacency graph:
//   - every region is non-empty and inside the canvas
//   - no two region interiors overlap
//   - region areas sum to the canvas area (with the above, the union is the canvas)
//   - every stored neighbor link is mirrored on the opposite side
//   - stored links equal the links recomputed from geometry
//
// All failures are joined and wrap ErrInvariant.
func (s *Space) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	bounds := s.grid.Bounds()
	regions := s.Regions()

	var area float64
	for _, r := range regions {
		if r.rect.Empty() {
			fail("region %v is empty", r)
		}
		if !r.rect.In(bounds) {
			fail("region %v outside canvas %v", r, bounds)
		}
		area += r.rect.Area()
	}
	if !vmath.Eq(area, bounds.Area()) {
		fail("region area %g, canvas area %g", vmath.Round(area), bounds.Area())
	}

	for i, a := range regions {
		for _, b := range regions[i+1:] {
			if a.rect.Overlaps(b.rect) {
				fail("regions %v and %v overlap", a, b)
			}
		}
	}

	for _, r := range regions {
		for _, side := range Sides {
			for _, id := range r.neighbors[side] {
				n, ok := s.regions[id]
				if !ok {
					fail("region %v lists unknown %s neighbor %s", r, side, id.Short())
					continue
				}
				if !n.hasNeighbor(side.Opposite(), r.id) {
					fail("region %v lists %v on %s but not the reverse", r, n, side)
				}
			}
		}

		for _, n := range regions {
			if n == r {
				continue
			}
			side, touching := touchingSide(r.rect, n.rect)
			stored := slices.ContainsFunc(Sides[:], func(sd Side) bool {
				return r.hasNeighbor(sd, n.id)
			})
			switch {
			case touching && !r.hasNeighbor(side, n.id):
				fail("region %v touches %v on %s but is not linked", r, n, side)
			case !touching && stored:
				fail("region %v linked to %v without touching", r, n)
			}
		}
	}

	return errors.Join(errs...)
}
