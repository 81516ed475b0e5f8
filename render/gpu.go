package render

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/figure"
	"github.com/soypat/glgl/math/ms2"
)

// Vertices32 returns the vertices of f in single precision, ready for
// upload to a GPU vertex buffer.
func Vertices32(f figure.Figure) []ms2.Vec {
	v := f.Vertices()
	v32 := make([]ms2.Vec, len(v))
	for i, p := range v {
		v32[i] = ms2.Vec{X: float32(p.X), Y: float32(p.Y)}
	}
	return v32
}

// Bounds32 returns the bounding box of f in single precision.
func Bounds32(f figure.Figure) ms2.Box {
	bb := f.Bounds()
	return ms2.Box{
		Min: ms2.Vec{X: float32(bb.Min.X), Y: float32(bb.Min.Y)},
		Max: ms2.Vec{X: float32(bb.Max.X), Y: float32(bb.Max.Y)},
	}
}

// Area32 computes the shoelace area of single precision vertices. It is
// the value a shader working on Vertices32 output would compute.
func Area32(v []ms2.Vec) float32 {
	n := len(v)
	var sum float32
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += v[i].X*v[j].Y - v[j].X*v[i].Y
	}
	return math.Abs(sum) / 2
}

// TriangleFan splits f into len(vertices) triangles sharing the figure's
// center, in single precision. The fan covers f exactly when every vertex
// is visible from the center, which holds for regular and convex figures.
func TriangleFan(f figure.Figure) [][3]ms2.Vec {
	v := Vertices32(f)
	c := f.Center()
	c32 := ms2.Vec{X: float32(c.X), Y: float32(c.Y)}
	fan := make([][3]ms2.Vec, len(v))
	for i := range v {
		fan[i] = [3]ms2.Vec{c32, v[i], v[(i+1)%len(v)]}
	}
	return fan
}
