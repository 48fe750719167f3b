package form2

import (
	"math"

	"github.com/soypat/cycloidal"
)

// TriangleAngle solves the law of cosines for the angle, in radians, between
// sides a and b of the triangle whose third side is opposite.
//
// If the three lengths cannot form a triangle the cosine falls outside
// [-1, 1] and a *cycloidal.GeometryInfeasibleError is returned instead.
func TriangleAngle(a, b, opposite float64) (float64, error) {
	cos := (a*a + b*b - opposite*opposite) / (2 * a * b)
	if !(a > 0) || !(b > 0) || math.IsNaN(cos) || math.Abs(cos) > 1+cosTolerance {
		return 0, &cycloidal.GeometryInfeasibleError{A: a, B: b, Opposite: opposite, Cosine: cos}
	}
	return math.Acos(cycloidal.Clamp(cos, -1, 1)), nil
}
