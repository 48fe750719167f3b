package obj2

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/soypat/cycloidal"
	"gonum.org/v1/gonum/spatial/r2"
)

// Assembly builds every part of the drive described by p and places it in a
// Scene: the rotor cutter curve moved to its eccentric position, the input
// stub and drive bore, the output holes and pins, and the ring sectors and
// pins. No Scene is returned if any part fails.
func Assembly(p cycloidal.GearParams) (cycloidal.Scene, error) {
	if err := p.Validate(); err != nil {
		return cycloidal.Scene{}, err
	}
	log := cycloidal.Logger()
	r := p.Radii()
	if p.SelfIntersecting() {
		log.Warn("rotor lobes self-intersect", "eccentricity", p.Eccentricity, "r2", r.R2)
	}

	// The ring is cheap and the likeliest to fail so it goes first.
	ring, err := Ring(p)
	if err != nil {
		return cycloidal.Scene{}, err
	}
	stub, drive, err := Input(p)
	if err != nil {
		return cycloidal.Scene{}, err
	}
	holes, pins, err := Output(p)
	if err != nil {
		return cycloidal.Scene{}, err
	}
	_, cutter, err := Rotor(p)
	if err != nil {
		return cycloidal.Scene{}, err
	}

	s := cycloidal.Scene{
		Params:      p,
		Rotor:       cutter.Translate(r2.Vec{X: p.Eccentricity}),
		Stub:        stub,
		Drive:       drive,
		OutputHoles: holes,
		OutputPins:  pins,
		RingSectors: ring.Sectors,
		RingPins:    ring.Pins,
		Bounds:      p.Bounds(),
	}
	log.Debug("assembled cycloidal drive",
		"ratio", p.Ratio,
		"pins", r.NPins,
		"r1", r.R1,
		"r2", r.R2,
		"pinAngle", ring.PinAngle,
		"wedgeAngle", ring.WedgeAngle,
		"rotorPoints", len(s.Rotor),
	)
	return s, nil
}

// AssembleAll assembles independent parameter sets concurrently. Scenes are
// returned in the order of ps. If any set fails the error of the lowest
// failing index is returned and no scenes.
func AssembleAll(ps []cycloidal.GearParams) ([]cycloidal.Scene, error) {
	scenes := make([]cycloidal.Scene, len(ps))
	errs := make([]error, len(ps))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i := range ps {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer func() {
				<-sem
				wg.Done()
			}()
			scenes[idx], errs[idx] = Assembly(ps[idx])
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("parameter set %d: %w", i, err)
		}
	}
	return scenes, nil
}
