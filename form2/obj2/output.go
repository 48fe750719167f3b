package obj2

import (
	"math"

	"github.com/soypat/cycloidal"
	"gonum.org/v1/gonum/spatial/r2"
)

// outputCount is the number of output pins. It is fixed for this mechanism.
const outputCount = 6

// Output returns the holes in the rotor and the pins of the output shaft that
// ride in them, on a hexagon of radius GearRadius/2. Each hole is centered
// Eccentricity off its pin and is Eccentricity larger in radius so the pin
// rolls around the inside of the hole as the rotor orbits.
func Output(p cycloidal.GearParams) (holes, pins [outputCount]cycloidal.Circle, err error) {
	if err := p.Validate(); err != nil {
		return holes, pins, err
	}
	pinRadius := p.OutputScale * p.PinRadius
	for k := 0; k < outputCount; k++ {
		alpha := float64(k) * math.Pi / 3
		s, c := math.Sincos(alpha)
		center := r2.Vec{X: p.GearRadius * c / 2, Y: p.GearRadius * s / 2}
		pins[k] = cycloidal.Circle{Center: center, Radius: pinRadius}
		holes[k] = cycloidal.Circle{
			Center: r2.Add(center, r2.Vec{X: p.Eccentricity}),
			Radius: pinRadius + p.Eccentricity,
		}
	}
	return holes, pins, nil
}

// Input returns the input shaft stub at the origin and the eccentric drive
// bore of the rotor.
func Input(p cycloidal.GearParams) (stub, drive cycloidal.Circle, err error) {
	if err := p.Validate(); err != nil {
		return stub, drive, err
	}
	stub = cycloidal.Circle{Radius: p.PinRadius / 2}
	drive = cycloidal.Circle{Center: r2.Vec{X: p.Eccentricity}, Radius: p.InputRadius}
	return stub, drive, nil
}
