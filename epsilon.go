package geom

import "math"

// Epsilon is the absolute tolerance used by all approximate comparisons in
// this package: point equality, collinearity, parallelism, and segment
// containment.
const Epsilon = 1e-9

// nearZero reports whether |x| <= eps.
func nearZero(x, eps float64) bool {
	return math.Abs(x) <= eps
}
