// Package cycloidal computes the planar geometry of a cycloidal drive
// reducer: the epitrochoid rotor profile and the cutter curve offset from it,
// the eccentric input, the output holes and pins, and the fixed ring of pins
// and ring sectors the rotor lobes mesh with.
//
// Parts are built by package obj2 from a GearParams value and assembled into
// a Scene. Drawing a Scene is left to package render or any other consumer.
package cycloidal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// GearParams defines the parameters of a cycloidal drive.
type GearParams struct {
	Ratio        int     // reduction ratio; the ring has Ratio+1 pins
	PinRadius    float64 // radius of the ring pins
	GearRadius   float64 // radius of the circle the ring pins are arranged on
	InputRadius  float64 // radius of the eccentric drive bore
	Eccentricity float64 // offset of the drive axis from the rotor center
	RingPad      float64 // radial clearance added to the ring sector radius
	OutputScale  float64 // multiplier on the output pin and hole radius
	NPoints      int     // number of samples of the rotor profile
}

// DefaultGearParams returns the parameters of the reference reducer.
func DefaultGearParams() GearParams {
	return GearParams{
		Ratio:        8,
		PinRadius:    10,
		GearRadius:   100,
		InputRadius:  20,
		Eccentricity: 5,
		RingPad:      0,
		OutputScale:  1,
		NPoints:      10000,
	}
}

// Radii are the quantities derived from the ratio and gear radius.
type Radii struct {
	NPins       int     // number of ring pins, Ratio+1
	R1          float64 // rolling circle radius of the rotor
	R2          float64 // rolling circle radius of a lobe
	PinsArrange float64 // R1+R2, the radius the ring pins are arranged on
}

// Radii returns the derived radii of the drive. Every part obtains them from
// here so they never drift apart.
func (p GearParams) Radii() Radii {
	r2 := p.GearRadius / float64(p.Ratio+1)
	r1 := float64(p.Ratio) * r2
	return Radii{
		NPins:       p.Ratio + 1,
		R1:          r1,
		R2:          r2,
		PinsArrange: r1 + r2,
	}
}

// SelfIntersecting reports whether the eccentricity is large enough for the
// rotor lobes to cross each other. Validate does not reject such parameters.
func (p GearParams) SelfIntersecting() bool {
	return p.Eccentricity >= p.Radii().R2
}

// Extent is the recommended half width of a square view of the drive.
func (p GearParams) Extent() float64 {
	return p.GearRadius + 2*p.PinRadius
}

// Bounds returns the square view recommended to renderers.
func (p GearParams) Bounds() r2.Box {
	ext := p.Extent()
	return r2.Box{Min: r2.Vec{X: -ext, Y: -ext}, Max: r2.Vec{X: ext, Y: ext}}
}

// Validate checks every parameter against its domain and returns an
// *InvalidParameterError naming the first one that is out of range.
func (p GearParams) Validate() error {
	switch {
	case p.Ratio < 1:
		return &InvalidParameterError{Name: "Ratio", Value: float64(p.Ratio), Reason: "must be >= 1"}
	case p.Ratio == math.MaxInt:
		return &InvalidParameterError{Name: "Ratio", Value: float64(p.Ratio), Reason: "pin count Ratio+1 overflows int"}
	case p.NPoints < 2:
		return &InvalidParameterError{Name: "NPoints", Value: float64(p.NPoints), Reason: "must be >= 2"}
	}
	for _, f := range []struct {
		name   string
		v      float64
		zeroOK bool
	}{
		{name: "PinRadius", v: p.PinRadius},
		{name: "GearRadius", v: p.GearRadius},
		{name: "InputRadius", v: p.InputRadius},
		{name: "Eccentricity", v: p.Eccentricity},
		{name: "RingPad", v: p.RingPad, zeroOK: true},
		{name: "OutputScale", v: p.OutputScale},
	} {
		if !finite(f.v) {
			return &InvalidParameterError{Name: f.name, Value: f.v, Reason: "must be finite"}
		}
		if f.zeroOK && f.v < 0 {
			return &InvalidParameterError{Name: f.name, Value: f.v, Reason: "must be >= 0"}
		}
		if !f.zeroOK && f.v <= 0 {
			return &InvalidParameterError{Name: f.name, Value: f.v, Reason: "must be > 0"}
		}
	}
	return nil
}
