package form2

import (
	"github.com/soypat/cycloidal"
	"gonum.org/v1/gonum/spatial/r2"
)

// circle is the 2d signed distance object for a circle.
type circle struct {
	center r2.Vec
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 of c.
func Circle(c cycloidal.Circle) (cycloidal.SDF2, error) {
	if !(c.Radius > 0) {
		return nil, &cycloidal.InvalidParameterError{Name: "radius", Value: c.Radius, Reason: "must be > 0"}
	}
	d := r2.Vec{X: c.Radius, Y: c.Radius}
	return &circle{
		center: c.Center,
		radius: c.Radius,
		bb:     r2.Box{Min: r2.Sub(c.Center, d), Max: r2.Add(c.Center, d)},
	}, nil
}

// Evaluate returns the minimum distance to a 2d circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(r2.Sub(p, s.center)) - s.radius
}

// Bounds returns the bounding box of a 2d circle.
func (s *circle) Bounds() r2.Box {
	return s.bb
}
