package obj2

import (
	"fmt"
	"math"

	"github.com/soypat/cycloidal"
	"github.com/soypat/cycloidal/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

// RingLayout is the fixed ring of a cycloidal drive: the pins the rotor lobes
// mesh with and the housing sectors between them. Pins[j] and Sectors[j] share
// the angular position j.
type RingLayout struct {
	Pins    []cycloidal.RingPin
	Sectors []cycloidal.Wedge

	PinAngle    float64 // half the angle a pin occupies on the sector circle (degrees)
	WedgeAngle  float64 // extra relief angle on each side of a pin (degrees)
	SectorAngle float64 // angle between consecutive pins (degrees)
}

// PinAngle returns, in degrees, the angle around the drive center between a
// ring pin center and the point where the pin crosses the sector circle of
// radius PinsArrange+RingPad.
func PinAngle(p cycloidal.GearParams) (float64, error) {
	rarr := p.Radii().PinsArrange
	ang, err := form2.TriangleAngle(rarr+p.RingPad, rarr, p.PinRadius)
	if err != nil {
		return 0, fmt.Errorf("ring pin angle for RingPad=%g PinRadius=%g arrangement radius=%g: %w", p.RingPad, p.PinRadius, rarr, err)
	}
	return cycloidal.RtoD(ang), nil
}

// WedgeAngle returns, in degrees, how far the relief arc of a ring pin extends
// past its half circle. It is negative when the sector circle cuts the pin
// inside its center line, as it does for a zero RingPad.
func WedgeAngle(p cycloidal.GearParams) (float64, error) {
	rarr := p.Radii().PinsArrange
	ang, err := form2.TriangleAngle(p.PinRadius, rarr, rarr+p.RingPad)
	if err != nil {
		return 0, fmt.Errorf("ring pin relief angle for RingPad=%g PinRadius=%g arrangement radius=%g: %w", p.RingPad, p.PinRadius, rarr, err)
	}
	return cycloidal.RtoD(ang - math.Pi/2), nil
}

// Ring returns the layout of the Ratio+1 ring pins and ring sectors.
// Pins wider than the pitch between them overlap and leave no room for a
// sector; they are rejected with an *cycloidal.InvalidParameterError naming
// PinRadius.
func Ring(p cycloidal.GearParams) (RingLayout, error) {
	if err := p.Validate(); err != nil {
		return RingLayout{}, err
	}
	r := p.Radii()
	pinAngle, err := PinAngle(p)
	if err != nil {
		return RingLayout{}, err
	}
	sectorAngle := 360 / float64(r.NPins)
	if 2*pinAngle > sectorAngle {
		return RingLayout{}, fmt.Errorf("ring of %d pins: %w", r.NPins, &cycloidal.InvalidParameterError{
			Name:   "PinRadius",
			Value:  p.PinRadius,
			Reason: fmt.Sprintf("pins span %.4g degrees of a %.4g degree pitch and overlap", 2*pinAngle, sectorAngle),
		})
	}
	wedgeAngle, err := WedgeAngle(p)
	if err != nil {
		return RingLayout{}, err
	}
	ring := RingLayout{
		Pins:        make([]cycloidal.RingPin, r.NPins),
		Sectors:     make([]cycloidal.Wedge, r.NPins),
		PinAngle:    pinAngle,
		WedgeAngle:  wedgeAngle,
		SectorAngle: sectorAngle,
	}
	for j := 0; j < r.NPins; j++ {
		th := 2 * math.Pi * float64(j) / float64(p.Ratio+1)
		deg := cycloidal.RtoD(th)
		s, c := math.Sincos(th)
		center := r2.Vec{X: p.GearRadius * c, Y: p.GearRadius * s}

		ring.Sectors[j] = cycloidal.Wedge{
			Radius: r.PinsArrange + p.RingPad,
			Start:  deg + pinAngle,
			End:    deg + ring.SectorAngle - pinAngle,
		}
		ring.Pins[j] = cycloidal.RingPin{
			Circle: cycloidal.Circle{Center: center, Radius: p.PinRadius},
			Relief: cycloidal.Wedge{
				Center: center,
				Radius: p.PinRadius,
				Start:  deg + 90 - wedgeAngle,
				End:    deg + 270 + wedgeAngle,
			},
		}
	}
	return ring, nil
}
