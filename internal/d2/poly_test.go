package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestAreaWinding(t *testing.T) {
	ccw := Set{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}}
	cw := Set{{X: 0, Y: 4}, {X: 3, Y: 0}, {X: 0, Y: 0}}
	if got := ccw.SignedArea(); got != 6 {
		t.Errorf("ccw signed area got %g, want 6", got)
	}
	if got := cw.SignedArea(); got != -6 {
		t.Errorf("cw signed area got %g, want -6", got)
	}
	if ccw.Area() != cw.Area() {
		t.Errorf("area depends on winding: %g != %g", ccw.Area(), cw.Area())
	}
}

func TestAreaDegenerate(t *testing.T) {
	collinear := Set{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	if got := collinear.Area(); got != 0 {
		t.Errorf("collinear area got %g, want 0", got)
	}
	if got := (Set{}).Area(); got != 0 {
		t.Errorf("empty area got %g, want 0", got)
	}
}

func TestCentroid(t *testing.T) {
	s := Set{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2}}
	got := s.Centroid()
	if got != (r2.Vec{X: 2, Y: 2}) {
		t.Errorf("got centroid %v, want (2,2)", got)
	}
	if got := (Set{}).Centroid(); got != (r2.Vec{}) {
		t.Errorf("empty centroid got %v, want origin", got)
	}
}

func TestNagon(t *testing.T) {
	center := r2.Vec{X: -2, Y: 5}
	for _, n := range []int{3, 4, 6, 8, 17} {
		const radius = 2.5
		v := Nagon(n, radius, center)
		if len(v) != n {
			t.Fatalf("n=%d: got %d vertices", n, len(v))
		}
		if v[0] != r2.Add(center, r2.Vec{X: radius}) {
			t.Errorf("n=%d: first vertex %v not on +x axis", n, v[0])
		}
		for i, p := range v {
			if d := r2.Norm(r2.Sub(p, center)); !scalar.EqualWithinAbs(d, radius, tol) {
				t.Errorf("n=%d: vertex %d at distance %g, want %g", n, i, d, radius)
			}
		}
		if c := v.Centroid(); !EqualWithin(c, center, tol) {
			t.Errorf("n=%d: centroid %v, want %v", n, c, center)
		}
		want := 0.5 * float64(n) * radius * radius * math.Sin(2*math.Pi/float64(n))
		if got := v.Area(); !scalar.EqualWithinAbs(got, want, tol) {
			t.Errorf("n=%d: area %g, want %g", n, got, want)
		}
		if v.SignedArea() <= 0 {
			t.Errorf("n=%d: generated polygon is not counter-clockwise", n)
		}
	}
	if Nagon(2, 1, r2.Vec{}) != nil {
		t.Error("expected nil for n < 3")
	}
}

func TestDistance(t *testing.T) {
	square := Set{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	for _, test := range []struct {
		p    r2.Vec
		want float64
	}{
		{p: r2.Vec{X: 1, Y: 1}, want: -1},
		{p: r2.Vec{X: 1.5, Y: 1}, want: -0.5},
		{p: r2.Vec{X: 3, Y: 1}, want: 1},
		{p: r2.Vec{X: 3, Y: 3}, want: math.Sqrt2},
		{p: r2.Vec{X: 2, Y: 1}, want: 0},
	} {
		got := square.Distance(test.p)
		if !scalar.EqualWithinAbs(got, test.want, tol) {
			t.Errorf("distance from %v got %g, want %g", test.p, got, test.want)
		}
		// Traversal direction does not affect the result.
		rev := Set{square[3], square[2], square[1], square[0]}
		if got2 := rev.Distance(test.p); !scalar.EqualWithinAbs(got, got2, tol) {
			t.Errorf("reversed distance from %v got %g, want %g", test.p, got2, got)
		}
	}
	dup := Set{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	if d := dup.Distance(r2.Vec{X: 0.25, Y: 0.25}); d >= 0 {
		t.Errorf("point inside polygon with repeated vertex got distance %g", d)
	}
}

func TestBounds(t *testing.T) {
	s := Set{{X: -1, Y: 4}, {X: 3, Y: -2}, {X: 0, Y: 0}}
	got := s.Bounds()
	want := Box{Min: r2.Vec{X: -1, Y: -2}, Max: r2.Vec{X: 3, Y: 4}}
	if got != want {
		t.Errorf("got bounds %v, want %v", got, want)
	}
	if !got.Contains(r2.Vec{X: 3, Y: 4}) || got.Contains(r2.Vec{X: 3.1, Y: 0}) {
		t.Error("box containment mismatch")
	}
	if c := got.Center(); c != (r2.Vec{X: 1, Y: 1}) {
		t.Errorf("got center %v", c)
	}
	if sq := NewBox2(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 4, Y: 6}); sq != want {
		t.Errorf("got box from center %v", sq)
	}
	if e := got.Enlarge(r2.Vec{X: 2, Y: 2}); e.Min != (r2.Vec{X: -2, Y: -3}) || e.Max != (r2.Vec{X: 4, Y: 5}) {
		t.Errorf("got enlarged %v", e)
	}
}

func TestSetCloneEqual(t *testing.T) {
	a := Set{{X: 1, Y: 2}, {X: 3, Y: 4}}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone not equal")
	}
	b[0].X = 100
	if a[0].X != 1 {
		t.Error("clone shares memory with source")
	}
	if a.Equal(b) || a.Equal(a[:1]) {
		t.Error("expected inequality")
	}
	if Set(nil).Clone() != nil {
		t.Error("clone of nil should be nil")
	}
}
