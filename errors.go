package cycloidal

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// InvalidParameterError is returned when a parameter lies outside its domain.
type InvalidParameterError struct {
	Name   string  // parameter name as it appears in GearParams
	Value  float64 // offending value
	Reason string  // violated constraint, e.g. "must be > 0"
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// DegenerateCurveError is returned when a polyline has two identical
// consecutive points, so the tangent between them is undefined.
type DegenerateCurveError struct {
	Index int    // index of the second point of the zero length segment
	Point r2.Vec // the repeated point
}

func (e *DegenerateCurveError) Error() string {
	return fmt.Sprintf("degenerate curve: zero length segment ending at index %d (%g, %g)", e.Index, e.Point.X, e.Point.Y)
}

// GeometryInfeasibleError is returned when three lengths cannot form the
// triangle a law of cosines angle is solved on.
type GeometryInfeasibleError struct {
	A, B     float64 // sides adjacent to the solved angle
	Opposite float64 // side opposite to the solved angle
	Cosine   float64 // cosine the angle would need; outside [-1, 1]
}

func (e *GeometryInfeasibleError) Error() string {
	return fmt.Sprintf("infeasible triangle a=%g b=%g opposite=%g: cosine %g outside [-1, 1]", e.A, e.B, e.Opposite, e.Cosine)
}
