package spline

// Knots is a non-decreasing knot sequence over the [0,1] parameter range.
type Knots []float32

// StandardKnots builds the clamped uniform knot sequence for order k and
// m = control point count - 1. The result has length m+k+1: the first k
// entries are 0, the last k entries are 1, and the interior entries rise
// by 1/(m-k+2). Full end multiplicity makes the curve meet the first and
// last control points. Only defined for k >= 2 and m >= k-1.
func StandardKnots(k, m int) Knots {
	U := make(Knots, 0, m+k+1)
	spacing := 1 / float32(m-k+2)
	for i := 0; i < m+k+1; i++ {
		switch {
		case i < k:
			U = append(U, 0)
		case i < m+1:
			U = append(U, U[i-1]+spacing)
		default:
			U = append(U, 1)
		}
	}
	return U
}

// Span returns the index i such that U[i] <= u < U[i+1], or -1 when no
// span contains u. Parameters at or beyond the final knot have no span;
// the sampling loop keeps its upper bound exclusive for that reason.
func (U Knots) Span(u float32, k, m int) int {
	for i := 0; i < m+k; i++ {
		if u >= U[i] && u < U[i+1] {
			return i
		}
	}
	return -1
}

// Domain returns the half-open parameter range [U[k-1], U[m+1]) on which
// the curve is defined.
func (U Knots) Domain(k, m int) (float32, float32) {
	return U[k-1], U[m+1]
}

// IsNonDecreasing reports whether the sequence never steps down.
func (U Knots) IsNonDecreasing() bool {
	for i := 1; i < len(U); i++ {
		if U[i] < U[i-1] {
			return false
		}
	}
	return true
}
