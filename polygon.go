package figure

import (
	"github.com/pkg/errors"
	"github.com/soypat/figure/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// poly is the vertex payload shared by every figure variant.
type poly struct {
	vertices d2.Set
	center   r2.Vec
	// radius is the circumradius used to generate vertices. Only valid
	// while regular is true.
	radius  float64
	regular bool
}

func (p *poly) setRegular(k Kind, radius float64, center r2.Vec) {
	p.vertices = d2.Nagon(k.Arity(), radius, center)
	p.center = center
	p.radius = radius
	p.regular = true
}

func (p *poly) setVertices(k Kind, vertices []r2.Vec) error {
	if len(vertices) != k.Arity() {
		return errors.Wrapf(ErrArity, "%s: got %d vertices, want %d", k, len(vertices), k.Arity())
	}
	p.vertices = d2.Set(vertices).Clone()
	p.center = p.vertices.Centroid()
	p.radius = 0
	p.regular = false
	return nil
}

func (p *poly) clone() poly {
	c := *p
	c.vertices = p.vertices.Clone()
	return c
}

// Area returns the non-negative shoelace area of the figure.
func (p *poly) Area() float64 { return p.vertices.Area() }

// Value returns the figure's area.
func (p *poly) Value() float64 { return p.Area() }

// Center returns the cached center: the generation point of a regular
// figure or the vertex mean of a custom one.
func (p *poly) Center() r2.Vec { return p.center }

// Vertices returns a copy of the figure's ordered vertices.
func (p *poly) Vertices() []r2.Vec { return p.vertices.Clone() }

// Bounds returns the axis aligned bounding box of the vertices.
func (p *poly) Bounds() r2.Box { return r2.Box(p.vertices.Bounds()) }

// Distance returns the distance from pt to the figure's boundary. It is
// negative when pt lies inside.
func (p *poly) Distance(pt r2.Vec) float64 { return p.vertices.Distance(pt) }

// Contains reports whether pt is inside the figure or on its boundary.
func (p *poly) Contains(pt r2.Vec) bool {
	if len(p.vertices) == 0 || !p.vertices.Bounds().Contains(pt) {
		return false
	}
	return p.vertices.Distance(pt) <= 0
}

// Regular returns the circumradius the vertices were generated with. ok is
// false for figures built from an explicit vertex list.
func (p *poly) Regular() (radius float64, ok bool) {
	return p.radius, p.regular
}
