package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Tolerance constants shared by every border and overlap decision
const (
	Epsilon   = 1e-4
	Precision = 4
)

var precisionScale = math.Pow10(Precision)

// Scalar is a constraint for the numeric types the helpers accept
type Scalar interface {
	constraints.Integer | constraints.Float
}

// --- Arithmetic ---

func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi]; lo wins if the bounds are inverted
func Clamp[T Scalar](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// --- Tolerance ---

// Round rounds v to Precision decimal places
func Round(v float64) float64 {
	return math.Round(v*precisionScale) / precisionScale
}

// Eq reports whether a and b are equal within Epsilon after rounding
func Eq(a, b float64) bool {
	return math.Abs(Round(a)-Round(b)) < Epsilon
}

// Less reports a < b where values within tolerance count as equal
func Less(a, b float64) bool {
	return a < b && !Eq(a, b)
}

// LessEq reports a <= b within tolerance
func LessEq(a, b float64) bool {
	return a < b || Eq(a, b)
}

// Overlaps reports whether [a0, a1] and [b0, b1] share a positive-length span.
// Intervals meeting at a single point do not overlap.
func Overlaps(a0, a1, b0, b1 float64) bool {
	return Less(a0, b1) && Less(b0, a1)
}
