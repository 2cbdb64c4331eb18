package partition

// connect links a and b on the facing sides if they share an edge segment
func (s *Space) connect(a, b *Region) {
	if a == b {
		return
	}
	side, ok := touchingSide(a.rect, b.rect)
	if !ok {
		return
	}
	a.addNeighbor(side, b.id)
	b.addNeighbor(side.Opposite(), a.id)
}

// detach removes r from every neighbor's lists and clears r's own lists
func (s *Space) detach(r *Region) {
	for _, side := range Sides {
		for _, id := range r.neighbors[side] {
			if n, ok := s.regions[id]; ok {
				n.removeNeighbor(side.Opposite(), r.id)
			}
		}
		r.neighbors[side] = nil
	}
}

// relink recomputes r's adjacency against candidates only. Regions outside
// the candidate set must not be able to touch r.
func (s *Space) relink(r *Region, candidates []RegionID) {
	s.detach(r)
	for _, id := range candidates {
		if n, ok := s.regions[id]; ok {
			s.connect(r, n)
		}
	}
}
