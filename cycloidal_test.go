package cycloidal_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/soypat/cycloidal"
	"github.com/soypat/cycloidal/form2/obj2"
	"github.com/soypat/cycloidal/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestDefaultGearParams(t *testing.T) {
	p := cycloidal.DefaultGearParams()
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	want := cycloidal.GearParams{Ratio: 8, PinRadius: 10, GearRadius: 100, InputRadius: 20,
		Eccentricity: 5, RingPad: 0, OutputScale: 1, NPoints: 10000}
	if p != want {
		t.Errorf("defaults got %+v. want %+v", p, want)
	}
	if p.SelfIntersecting() {
		t.Error("reference reducer reported as self-intersecting")
	}
	if p.Extent() != 120 {
		t.Errorf("extent got %g. want 120", p.Extent())
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		p    cycloidal.GearParams
		name string
	}{
		{p: cycloidal.GearParams{Ratio: math.MaxInt, PinRadius: 1, GearRadius: 1, InputRadius: 1, Eccentricity: 1, OutputScale: 1, NPoints: 2}, name: "Ratio"},
		{p: cycloidal.GearParams{Ratio: 0, PinRadius: 1, GearRadius: 1, InputRadius: 1, Eccentricity: 1, OutputScale: 1, NPoints: 2}, name: "Ratio"},
		{p: cycloidal.GearParams{Ratio: 1, PinRadius: 1, GearRadius: 1, InputRadius: 1, Eccentricity: 1, OutputScale: 1, NPoints: 0}, name: "NPoints"},
		{p: cycloidal.GearParams{Ratio: 1, PinRadius: -1, GearRadius: 1, InputRadius: 1, Eccentricity: 1, OutputScale: 1, NPoints: 2}, name: "PinRadius"},
		{p: cycloidal.GearParams{Ratio: 1, PinRadius: 1, GearRadius: 1, InputRadius: 1, Eccentricity: 1, RingPad: math.NaN(), OutputScale: 1, NPoints: 2}, name: "RingPad"},
		{p: cycloidal.GearParams{Ratio: 1, PinRadius: 1, GearRadius: 1, InputRadius: 1, Eccentricity: 1, OutputScale: 0, NPoints: 2}, name: "OutputScale"},
	} {
		err := test.p.Validate()
		var perr *cycloidal.InvalidParameterError
		if !errors.As(err, &perr) {
			t.Errorf("%s: expected InvalidParameterError, got %v", test.name, err)
			continue
		}
		if perr.Name != test.name {
			t.Errorf("got error for %s. want %s", perr.Name, test.name)
		}
	}
	ok := cycloidal.GearParams{Ratio: 1, PinRadius: 1, GearRadius: 1, InputRadius: 1, Eccentricity: 1, OutputScale: 1, NPoints: 2}
	if err := ok.Validate(); err != nil {
		t.Errorf("minimal parameters rejected: %s", err)
	}
}

func TestPolyline(t *testing.T) {
	pl := cycloidal.Polyline{{X: 0, Y: 0}, {X: 2, Y: -1}, {X: 1, Y: 3}, {X: 0, Y: 0}}
	if !pl.Closed(0) {
		t.Error("expected closed polyline")
	}
	if pl[:3].Closed(1e-3) || pl[:1].Closed(1) {
		t.Error("expected open polyline")
	}
	moved := pl.Translate(r2.Vec{X: 1, Y: 1})
	if moved[1] != (r2.Vec{X: 3, Y: 0}) || pl[1] != (r2.Vec{X: 2, Y: -1}) {
		t.Error("translate must copy")
	}
	bb := pl.Bounds()
	if !d2.Box(bb).Equals(d2.Box{Min: r2.Vec{X: 0, Y: -1}, Max: r2.Vec{X: 2, Y: 3}}, 0) {
		t.Errorf("bounds got %v", bb)
	}
}

func TestCircleWedgePolyline(t *testing.T) {
	c := cycloidal.Circle{Center: r2.Vec{X: 1, Y: 2}, Radius: 3}
	pl := c.Polyline(64)
	if len(pl) != 65 || !pl.Closed(0) {
		t.Fatalf("circle outline has %d points, closed=%v", len(pl), pl.Closed(0))
	}
	for i, p := range pl {
		if d := r2.Norm(r2.Sub(p, c.Center)); math.Abs(d-c.Radius) > 1e-12 {
			t.Fatalf("point %d at distance %g from center", i, d)
		}
	}

	w := cycloidal.Wedge{Center: r2.Vec{X: -1}, Radius: 2, Start: 90, End: 180}
	if w.Span() != 90 {
		t.Errorf("span got %g", w.Span())
	}
	arc := w.Polyline(10)
	start, end := w.Ends()
	if len(arc) != 11 || arc[0] != start || r2.Norm(r2.Sub(arc[10], end)) > 1e-12 {
		t.Errorf("arc does not run between its ends: %v %v vs %v %v", arc[0], arc[10], start, end)
	}
	if r2.Norm(r2.Sub(start, r2.Vec{X: -1, Y: 2})) > 1e-12 || r2.Norm(r2.Sub(end, r2.Vec{X: -3})) > 1e-12 {
		t.Errorf("ends got %v %v", start, end)
	}
}

func TestSceneExtentsWithinBounds(t *testing.T) {
	for _, ratio := range []int{1, 4, 8} {
		p := cycloidal.DefaultGearParams()
		p.Ratio = ratio
		p.NPoints = 1000
		s, err := obj2.Assembly(p)
		if err != nil {
			t.Fatal(err)
		}
		ext := s.Extents()
		if !d2.Box(s.Bounds).Contains(d2.Box(ext)) {
			t.Errorf("ratio %d: geometry %v outside recommended view %v", ratio, ext, s.Bounds)
		}
	}
}

func TestSceneExtentsEmpty(t *testing.T) {
	if got := (cycloidal.Scene{}).Extents(); got != (r2.Box{}) {
		t.Errorf("zero scene extents got %v. want zero box", got)
	}
	s := cycloidal.Scene{Drive: cycloidal.Circle{Center: r2.Vec{X: 5}, Radius: 2}}
	want := d2.Box{Min: r2.Vec{X: 0, Y: -2}, Max: r2.Vec{X: 7, Y: 2}}
	if got := s.Extents(); !d2.Box(got).Equals(want, 0) {
		t.Errorf("rotorless scene extents got %v. want %v", got, want)
	}
}

func TestSetLogger(t *testing.T) {
	defer cycloidal.SetLogger(nil)
	l := slog.Default()
	cycloidal.SetLogger(l)
	if cycloidal.Logger() != l {
		t.Error("logger not installed")
	}
	cycloidal.SetLogger(nil)
	if cycloidal.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard records")
	}
}
