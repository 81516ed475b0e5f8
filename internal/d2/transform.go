package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform is a 2D affine transformation stored as a row major 3x3
// matrix in homogeneous coordinates.
type Transform struct {
	data [3 * 3]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{data: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// Translate returns a transform that moves points by d.
func Translate(d r2.Vec) Transform {
	t := Identity()
	t.Set(0, 2, d.X)
	t.Set(1, 2, d.Y)
	return t
}

// Rotate returns a counter clockwise rotation by angle radians about pivot.
func Rotate(pivot r2.Vec, angle float64) Transform {
	s, c := math.Sincos(angle)
	r := Identity()
	r.Set(0, 0, c)
	r.Set(0, 1, -s)
	r.Set(1, 0, s)
	r.Set(1, 1, c)
	return about(pivot, r)
}

// ScaleAbout returns a uniform scaling by k that keeps pivot fixed.
func ScaleAbout(pivot r2.Vec, k float64) Transform {
	s := Identity()
	s.Set(0, 0, k)
	s.Set(1, 1, k)
	return about(pivot, s)
}

func about(pivot r2.Vec, t Transform) Transform {
	return Translate(pivot).Mul(t).Mul(Translate(r2.Scale(-1, pivot)))
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices. The result applies b first, then a.
func (a Transform) Mul(b Transform) Transform {
	var m Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// Apply returns a new set with every point transformed.
func (t Transform) Apply(a Set) Set {
	out := make(Set, len(a))
	for i, v := range a {
		out[i] = t.ApplyPos(v)
	}
	return out
}
