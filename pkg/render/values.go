package render

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Format renders a coordinate with the shortest representation that
// round-trips at the coordinate type's precision.
func Format[A constraints.Float](v A) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[A]())
}

// FormatSigned renders a coordinate with an explicit leading sign, the way
// the shape dump prints point components. Negative zero keeps its minus.
func FormatSigned[A constraints.Float](v A) string {
	if math.Signbit(float64(v)) {
		return Format(v)
	}
	return "+" + Format(v)
}

// bitSize reports whether A is a 32- or 64-bit float by checking whether a
// value below float32 precision survives a round trip through A.
func bitSize[A constraints.Float]() int {
	const probe = 1 + 1e-10
	if float64(A(probe)) == probe {
		return 64
	}
	return 32
}
