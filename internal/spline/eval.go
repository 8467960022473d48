package spline

// EvalPoint computes the point on the B-spline curve at parameter u using
// the iterative corner-cutting form of de Boor's algorithm: a working
// buffer is seeded with the k control points whose support covers the knot
// span containing u, then shrunk one blend per round until a single point
// remains. The ok result is false when u lies outside the curve domain or
// the inputs cannot cover a span.
func EvalPoint(ctrl []Point, U Knots, k, m int, u float32) (Point, bool) {
	d := U.Span(u, k, m)
	if d < 0 || d-(k-1) < 0 || d >= len(ctrl) {
		return Point{}, false
	}

	// Nonzero coefficients for span d, highest index first.
	C := make([]Point, k)
	for i := 0; i < k; i++ {
		C[i] = ctrl[d-i]
	}

	for r := k; r > 1; r-- {
		i := d
		for s := 0; s <= r-2; s++ {
			// A zero-width span would divide by zero; treating the
			// weight as 0 keeps the blend on the surviving point.
			var omega float32
			if denom := U[i+r-1] - U[i]; denom != 0 {
				omega = (u - U[i]) / denom
			}
			C[s] = C[s].Scale(omega).Add(C[s+1].Scale(1 - omega))
			i--
		}
	}
	return C[0], true
}
