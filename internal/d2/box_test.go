package d2

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestBox(t *testing.T) {
	a := NewBox(r2.Vec{}, r2.Vec{X: 2, Y: 2})
	if !a.Equals(Box{Min: r2.Vec{X: -1, Y: -1}, Max: r2.Vec{X: 1, Y: 1}}, 0) {
		t.Errorf("NewBox got %v", a)
	}
	c := a.Extend(NewBox(r2.Vec{X: 5}, r2.Vec{X: 1, Y: 1}))
	if !c.Equals(Box{Min: r2.Vec{X: -1, Y: -1}, Max: r2.Vec{X: 5.5, Y: 1}}, 0) {
		t.Errorf("Extend got %v", c)
	}
	if !c.Contains(a) || a.Contains(c) {
		t.Error("Contains mismatch")
	}
}
