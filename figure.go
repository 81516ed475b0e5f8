// Package figure computes area and centroid of closed planar polygons with
// a fixed vertex count: triangles, hexagons and octagons.
//
// A figure is built either from an explicit, ordered vertex list (custom
// construction, center is the vertex mean) or generated as a regular
// polygon from a circumradius and a center point. Figures print to and
// parse from a single line of text, see Decoder.
package figure

import (
	"encoding"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Kind identifies the concrete figure variant.
type Kind uint8

const (
	KindTriangle Kind = iota + 1
	KindHexagon
	KindOctagon
)

// Kinds lists every figure kind.
var Kinds = [...]Kind{KindTriangle, KindHexagon, KindOctagon}

// Arity returns the number of vertices of figures of kind k, or 0 for an
// invalid kind.
func (k Kind) Arity() int {
	switch k {
	case KindTriangle:
		return 3
	case KindHexagon:
		return 6
	case KindOctagon:
		return 8
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "Triangle"
	case KindHexagon:
		return "Hexagon"
	case KindOctagon:
		return "Octagon"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the kind named s. Matching is case insensitive.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Figure is the capability set shared by every polygon variant. A Figure
// is one of *Triangle, *Hexagon or *Octagon.
type Figure interface {
	Kind() Kind
	// Area returns the non-negative shoelace area.
	Area() float64
	// Value is the figure's numeric value, which is its area.
	Value() float64
	// Center returns the cached center point.
	Center() r2.Vec
	// Vertices returns a copy of the ordered vertices.
	Vertices() []r2.Vec
	Bounds() r2.Box
	// Contains reports whether p is inside or on the boundary.
	Contains(p r2.Vec) bool
	// Distance returns the signed distance from p to the boundary,
	// negative inside.
	Distance(p r2.Vec) float64
	// Regular returns the circumradius if the figure holds the vertices
	// it was generated with.
	Regular() (radius float64, ok bool)
	// Equal reports whether f is the same variant with the same vertex
	// sequence.
	Equal(f Figure) bool
	// Clone returns a deep copy.
	Clone() Figure
	// SetVertices replaces the vertices and recomputes the center.
	SetVertices(vertices []r2.Vec) error
	// SetRegular replaces the vertices with a regular polygon.
	SetRegular(radius float64, center r2.Vec)
	// String returns the printed form
	//  <Kind> vertices: (x1, y1) ... | Center: (cx, cy)
	String() string
	encoding.TextMarshaler
	encoding.TextUnmarshaler

	payload() *poly
}

// New returns the default figure of kind k: a regular polygon of unit
// circumradius centered at the origin.
func New(k Kind) (Figure, error) {
	return NewRegular(k, 1, r2.Vec{})
}

// NewRegular returns a regular figure of kind k with the given
// circumradius and center.
func NewRegular(k Kind, radius float64, center r2.Vec) (Figure, error) {
	f, err := zero(k)
	if err != nil {
		return nil, err
	}
	f.SetRegular(radius, center)
	return f, nil
}

// NewCustom returns a figure of kind k with the given vertices. The
// vertex slice is copied.
func NewCustom(k Kind, vertices []r2.Vec) (Figure, error) {
	f, err := zero(k)
	if err != nil {
		return nil, err
	}
	if err = f.SetVertices(vertices); err != nil {
		return nil, err
	}
	return f, nil
}

// zero returns an unpopulated figure of kind k.
func zero(k Kind) (Figure, error) {
	switch k {
	case KindTriangle:
		return &Triangle{}, nil
	case KindHexagon:
		return &Hexagon{}, nil
	case KindOctagon:
		return &Octagon{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "kind %d", uint8(k))
}

// equal compares the discriminant of a and b and only then the vertices.
func equal(a, b Figure) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	pa, pb := a.payload(), b.payload()
	if pa == nil || pb == nil {
		return false
	}
	return pa.vertices.Equal(pb.vertices)
}
