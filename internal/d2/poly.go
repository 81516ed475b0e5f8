package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SignedArea returns the shoelace area of the closed polygon described
// by the set. It is positive for counter-clockwise traversal.
func (a Set) SignedArea() float64 {
	n := len(a)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += a[i].X*a[j].Y - a[j].X*a[i].Y
	}
	return sum / 2
}

// Area returns the non-negative area of the closed polygon described by the set.
// The result is meaningless for self-intersecting polygons.
func (a Set) Area() float64 {
	return math.Abs(a.SignedArea())
}

// Centroid returns the arithmetic mean of the vertices. The mean of an
// empty set is the origin.
func (a Set) Centroid() r2.Vec {
	if len(a) == 0 {
		return r2.Vec{}
	}
	var c r2.Vec
	for _, v := range a {
		c = r2.Add(c, v)
	}
	return r2.Scale(1/float64(len(a)), c)
}

// Nagon returns n vertices equally spaced by angle around center at a
// distance radius. Vertex 0 lies on the positive x axis from center.
func Nagon(n int, radius float64, center r2.Vec) Set {
	if n < 3 {
		return nil
	}
	v := make(Set, n)
	step := 2 * math.Pi / float64(n)
	for i := range v {
		p := Pol{R: radius, Theta: step * float64(i)}.PolarToCartesian()
		v[i] = r2.Add(center, p)
	}
	return v
}

// Distance returns the distance from p to the closed polygon boundary.
// It is negative when p lies inside the polygon.
func (a Set) Distance(p r2.Vec) float64 {
	n := len(a)
	if n == 0 {
		return math.Inf(1)
	}
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	pb := r2.Sub(p, a[0])
	for i := 0; i < n; i++ {
		va := a[i]
		vb := a[(i+1)%n]

		pa := pb
		pb = r2.Sub(p, vb)

		seg := r2.Sub(vb, va)
		length := r2.Norm(seg)
		if length == 0 {
			// Coincident vertices contribute only their own distance.
			dd = math.Min(dd, r2.Norm2(pa))
			continue
		}
		u := r2.Scale(1/length, seg)
		t := r2.Dot(pa, u)                       // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: u.Y, Y: -u.X}) // normal distance from p to line

		// Distance to line segment
		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa)) // distance to first vertex of line
		case t > length:
			dd = math.Min(dd, r2.Norm2(pb)) // distance to second vertex of line
		default:
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if va.Y <= p.Y {
			if vb.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if vb.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}
