package obj2

import (
	"math"

	"github.com/soypat/cycloidal"
	"github.com/soypat/cycloidal/form2"
)

// ClearanceReport holds the contact distances of an assembled drive.
//
// PinDistances[j] is the signed distance from the center of ring pin j to the
// rotor outline; it equals the pin radius when the pin touches the rotor.
// OutputGaps[k] is how far output pin k sits from the wall of its hole,
// zero when it rolls on the wall.
type ClearanceReport struct {
	PinDistances []float64
	OutputGaps   [outputCount]float64

	MinPin, MaxPin float64
}

// Clearance measures the assembled scene s.
func Clearance(s cycloidal.Scene) (ClearanceReport, error) {
	rotor, err := form2.Polygon(s.Rotor)
	if err != nil {
		return ClearanceReport{}, err
	}
	rep := ClearanceReport{
		PinDistances: make([]float64, len(s.RingPins)),
		MinPin:       math.Inf(1),
		MaxPin:       math.Inf(-1),
	}
	for j, pin := range s.RingPins {
		d := rotor.Evaluate(pin.Center)
		rep.PinDistances[j] = d
		rep.MinPin = math.Min(rep.MinPin, d)
		rep.MaxPin = math.Max(rep.MaxPin, d)
	}
	for k, hole := range s.OutputHoles {
		wall, err := form2.Circle(hole)
		if err != nil {
			return ClearanceReport{}, err
		}
		pin := s.OutputPins[k]
		// Deepest point of the pin inside the hole wall.
		rep.OutputGaps[k] = -(wall.Evaluate(pin.Center) + pin.Radius)
	}
	return rep, nil
}
