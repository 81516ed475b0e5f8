package figure

import (
	"github.com/soypat/figure/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Translate moves f by d. A regular figure stays regular. Nil figures are
// left untouched by Translate, Rotate and Scale.
func Translate(f Figure, d r2.Vec) {
	p := payloadOf(f)
	if p == nil {
		return
	}
	if p.regular {
		p.setRegular(f.Kind(), p.radius, r2.Add(p.center, d))
		return
	}
	p.transform(d2.Translate(d))
}

// Rotate turns f counter clockwise by angle radians about pivot. The
// result is always a custom figure since vertex 0 leaves the x axis.
func Rotate(f Figure, pivot r2.Vec, angle float64) {
	if p := payloadOf(f); p != nil {
		p.transform(d2.Rotate(pivot, angle))
	}
}

// Scale resizes f by k about its center. Regular figures scaled by a
// positive factor stay regular.
func Scale(f Figure, k float64) {
	p := payloadOf(f)
	if p == nil {
		return
	}
	if p.regular && k > 0 {
		p.setRegular(f.Kind(), k*p.radius, p.center)
		return
	}
	p.transform(d2.ScaleAbout(p.center, k))
}

// transform applies t to every vertex and turns p into a custom figure.
func (p *poly) transform(t d2.Transform) {
	p.vertices = t.Apply(p.vertices)
	p.center = p.vertices.Centroid()
	p.radius = 0
	p.regular = false
}

func payloadOf(f Figure) *poly {
	if f == nil {
		return nil
	}
	return f.payload()
}
