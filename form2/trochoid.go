package form2

import (
	"math"

	"github.com/soypat/cycloidal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Epitrochoid samples n points of the curve
//
//	x(θ) = R·cos(θ) − e·cos(k·θ)
//	y(θ) = R·sin(θ) − e·sin(k·θ)
//
// with θ evenly spaced over [0, 2π], both ends included, so the first and last
// points coincide. The curve is traversed counter-clockwise.
func Epitrochoid(R, e, k float64, n int) (cycloidal.Polyline, error) {
	if n < 2 {
		return nil, &cycloidal.InvalidParameterError{Name: "NPoints", Value: float64(n), Reason: "must be >= 2"}
	}
	theta := floats.Span(make([]float64, n), 0, 2*math.Pi)
	curve := make(cycloidal.Polyline, n)
	for i, th := range theta {
		s, c := math.Sincos(th)
		ks, kc := math.Sincos(k * th)
		curve[i] = r2.Vec{
			X: R*c - e*kc,
			Y: R*s - e*ks,
		}
	}
	return curve, nil
}
