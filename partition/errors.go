package partition

import "errors"

// Rejection reasons. A rejected split or merge leaves the space unchanged.
var (
	ErrNoRegion       = errors.New("no region under cursor")
	ErrEdgeTooClose   = errors.New("cut too close to an existing edge")
	ErrDegenerateCut  = errors.New("cut would leave a degenerate region")
	ErrEdgeTooFar     = errors.New("cursor not on an edge")
	ErrNoNeighbor     = errors.New("edge lies on the canvas border")
	ErrAmbiguousMerge = errors.New("edge is not shared by exactly two regions")
)

var (
	// ErrInvalidRect is returned by resize when the result would be empty
	ErrInvalidRect = errors.New("invalid region rectangle")
	// ErrInvariant wraps every failure reported by Validate
	ErrInvariant = errors.New("tiling invariant violated")
)

// IsRejection reports whether err is a user-facing precondition failure
func IsRejection(err error) bool {
	switch {
	case errors.Is(err, ErrNoRegion),
		errors.Is(err, ErrEdgeTooClose),
		errors.Is(err, ErrDegenerateCut),
		errors.Is(err, ErrEdgeTooFar),
		errors.Is(err, ErrNoNeighbor),
		errors.Is(err, ErrAmbiguousMerge):
		return true
	}
	return false
}
