package obj2

import (
	"fmt"

	"github.com/soypat/cycloidal"
	"github.com/soypat/cycloidal/form2"
)

// Rotor returns the lobe curve of the cycloidal rotor and the cutter curve
// offset pin radius inside it. Both curves are closed. The lobe curve is the
// path of a ring pin center relative to the rotor, the cutter curve is the
// rotor outline.
//
// Parameters with Eccentricity >= R2 are accepted even though their lobes
// intersect; see GearParams.SelfIntersecting.
func Rotor(p cycloidal.GearParams) (lobe, cutter cycloidal.Polyline, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	r := p.Radii()
	lobe, err = form2.Epitrochoid(r.R1+r.R2, p.Eccentricity, 1+r.R1/r.R2, p.NPoints)
	if err != nil {
		return nil, nil, err
	}
	cutter, err = form2.OffsetClosed(lobe, p.PinRadius)
	if err != nil {
		return nil, nil, fmt.Errorf("rotor cutter curve with %d points: %w", p.NPoints, err)
	}
	return lobe, cutter, nil
}
