package cycloidal

import (
	"math"

	"github.com/soypat/cycloidal/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polyline is an ordered sequence of points. A closed polyline repeats its
// first point at the end.
type Polyline []r2.Vec

// Closed reports whether the first and last points coincide within tol.
func (p Polyline) Closed(tol float64) bool {
	if len(p) < 2 {
		return false
	}
	return d2.EqualWithin(p[0], p[len(p)-1], tol)
}

// Translate returns a copy of the polyline moved by v.
func (p Polyline) Translate(v r2.Vec) Polyline {
	out := make(Polyline, len(p))
	for i := range p {
		out[i] = r2.Add(p[i], v)
	}
	return out
}

// Bounds returns the bounding box of the polyline. It panics on an empty polyline.
func (p Polyline) Bounds() r2.Box {
	s := d2.Set(p)
	return r2.Box{Min: s.Min(), Max: s.Max()}
}

// Circle is a circle of Radius around Center. It models pins, bores and holes.
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Polyline samples the circle outline counter-clockwise with n segments.
// The result is closed.
func (c Circle) Polyline(n int) Polyline {
	return arc(c.Center, c.Radius, 0, tau, n)
}

// Wedge is a circular arc of Radius around Center between the Start and End
// angles, in degrees measured counter-clockwise from the +x axis.
type Wedge struct {
	Center     r2.Vec
	Radius     float64
	Start, End float64
}

// Span returns the angular span of the wedge in degrees.
func (w Wedge) Span() float64 { return w.End - w.Start }

// Ends returns the points of the arc at the Start and End angles.
func (w Wedge) Ends() (start, end r2.Vec) {
	start = r2.Add(w.Center, d2.Pol{R: w.Radius, Theta: DtoR(w.Start)}.PolarToCartesian())
	end = r2.Add(w.Center, d2.Pol{R: w.Radius, Theta: DtoR(w.End)}.PolarToCartesian())
	return start, end
}

// Polyline samples the wedge arc from Start to End with n segments.
func (w Wedge) Polyline(n int) Polyline {
	return arc(w.Center, w.Radius, DtoR(w.Start), DtoR(w.End), n)
}

// RingPin is a fixed ring pin together with the arc of it that faces the
// rotor. The relieved part of the pin is the rest of the circle.
type RingPin struct {
	Circle
	Relief Wedge
}

func arc(center r2.Vec, radius, start, end float64, n int) Polyline {
	if n < 1 {
		n = 1
	}
	out := make(Polyline, n+1)
	step := (end - start) / float64(n)
	for i := range out {
		th := start + float64(i)*step
		out[i] = r2.Add(center, d2.Pol{R: radius, Theta: th}.PolarToCartesian())
	}
	// Avoid round-off on full turns.
	if math.Abs(end-start-tau) < Tolerance {
		out[n] = out[0]
	}
	return out
}

// Scene is the assembled geometry of a cycloidal drive. It holds plain values
// only and is not modified after assembly.
type Scene struct {
	Params GearParams // parameters the scene was built from

	// Rotor is the cutter curve of the rotor placed at its eccentric position.
	Rotor Polyline
	// Stub is the input shaft stub at the origin.
	Stub Circle
	// Drive is the eccentric drive bore of the rotor.
	Drive Circle

	OutputHoles [6]Circle // holes in the rotor
	OutputPins  [6]Circle // pins of the output shaft

	// RingSectors[j] is the housing arc between RingPins[j] and RingPins[j+1].
	RingSectors []Wedge
	RingPins    []RingPin

	// Bounds is the recommended view of the scene. Shapes are not clipped to it.
	Bounds r2.Box
}

// Extents returns the bounding box of every shape in the scene. Circles and
// wedges are bounded by their full circle. A zero Scene has a zero box.
func (s Scene) Extents() r2.Box {
	box := circleBox(s.Stub.Center, s.Stub.Radius)
	if len(s.Rotor) > 0 {
		box = box.Extend(d2.Box(s.Rotor.Bounds()))
	}
	for _, c := range s.Circles() {
		box = box.Extend(circleBox(c.Center, c.Radius))
	}
	for _, w := range s.Wedges() {
		box = box.Extend(circleBox(w.Center, w.Radius))
	}
	return r2.Box(box)
}

func circleBox(center r2.Vec, radius float64) d2.Box {
	return d2.NewBox(center, r2.Vec{X: 2 * radius, Y: 2 * radius})
}

// Circles returns every full circle in the scene in drawing order.
func (s Scene) Circles() []Circle {
	out := make([]Circle, 0, 2+2*len(s.OutputHoles))
	out = append(out, s.Stub, s.Drive)
	for k := range s.OutputHoles {
		out = append(out, s.OutputHoles[k], s.OutputPins[k])
	}
	return out
}

// Wedges returns every arc in the scene in drawing order: each ring sector
// followed by the relief of the pin sharing its index.
func (s Scene) Wedges() []Wedge {
	out := make([]Wedge, 0, 2*len(s.RingSectors))
	for j := range s.RingSectors {
		out = append(out, s.RingSectors[j])
		if j < len(s.RingPins) {
			out = append(out, s.RingPins[j].Relief)
		}
	}
	return out
}
