package form2

import (
	"math"

	"github.com/soypat/cycloidal"
	"github.com/soypat/cycloidal/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices, closed
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments. The loop
// is closed if the last vertex does not already repeat the first one.
// Zero length segments are skipped.
func Polygon(vertex cycloidal.Polyline) (cycloidal.SDF2, error) {
	n := len(vertex)
	if n < 3 {
		return nil, &cycloidal.InvalidParameterError{Name: "polygon vertices", Value: float64(n), Reason: "must be >= 3"}
	}
	s := polygon{}
	s.vertex = make([]r2.Vec, 0, n+1)
	s.vertex = append(s.vertex, vertex...)
	if !d2.EqualWithin(vertex[0], vertex[n-1], cycloidal.Tolerance) {
		s.vertex = append(s.vertex, vertex[0])
	}

	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] > 0 {
			s.vector[i] = r2.Scale(1/s.length[i], l)
		}
	}
	set := d2.Set(s.vertex)
	s.bb = r2.Box{Min: set.Min(), Max: set.Max()}
	return &s, nil
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)
		if s.length[i] == 0 {
			continue
		}

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa))
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb))
		} else {
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of the segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of the segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}
