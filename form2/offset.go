package form2

import (
	"math"

	"github.com/soypat/cycloidal"
	"github.com/soypat/cycloidal/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Offset returns the curve parallel to curve at perpendicular distance d.
//
// For every segment from curve[i] to curve[i+1] the end point curve[i+1] is
// moved by d along the unit normal to the left of the direction of travel.
// A positive d therefore offsets a counter-clockwise closed curve inwards.
// The first point of curve has no segment ending on it, so the result has one
// point less than curve. Closed curves are re-closed with OffsetClosed.
//
// A zero length segment returns a *cycloidal.DegenerateCurveError. Segments
// shorter than round-off relative to their coordinates count as zero length
// since their direction is noise.
func Offset(curve cycloidal.Polyline, d float64) (cycloidal.Polyline, error) {
	if len(curve) < 2 {
		return nil, &cycloidal.InvalidParameterError{Name: "curve length", Value: float64(len(curve)), Reason: "must be >= 2"}
	}
	out := make(cycloidal.Polyline, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		tangent := r2.Sub(curve[i], curve[i-1])
		norm := r2.Norm(tangent)
		if norm <= degenerateTol*math.Max(1, r2.Norm(curve[i])) || !d2.Finite(tangent) {
			return nil, &cycloidal.DegenerateCurveError{Index: i, Point: curve[i]}
		}
		normal := d2.LeftNormal(r2.Scale(1/norm, tangent))
		out[i-1] = r2.Add(curve[i], r2.Scale(d, normal))
	}
	return out, nil
}

// OffsetClosed is Offset followed by appending the first offset point, which
// closes the result again when curve is closed.
func OffsetClosed(curve cycloidal.Polyline, d float64) (cycloidal.Polyline, error) {
	out, err := Offset(curve, d)
	if err != nil {
		return nil, err
	}
	return append(out, out[0]), nil
}
