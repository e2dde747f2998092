package geom

import "math"

// Distance is the absolute difference between two scalar feature values.
func Distance(a, b float64) float64 {
	return math.Abs(a - b)
}
