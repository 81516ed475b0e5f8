package figure

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle is a figure with 3 vertices. The zero value has no vertices;
// use a constructor or populate it with SetVertices, SetRegular or
// UnmarshalText.
type Triangle struct{ poly }

// NewTriangle returns a regular triangle of unit circumradius centered at the origin.
func NewTriangle() *Triangle { return NewRegularTriangle(1, r2.Vec{}) }

// NewRegularTriangle returns a regular triangle of the given circumradius
// centered at center. Vertex 0 lies on the positive x axis from center.
func NewRegularTriangle(radius float64, center r2.Vec) *Triangle {
	t := &Triangle{}
	t.SetRegular(radius, center)
	return t
}

// TriangleFrom returns a triangle with the given vertices, which must be 3.
// Its center is the vertex mean.
func TriangleFrom(vertices []r2.Vec) (*Triangle, error) {
	t := &Triangle{}
	if err := t.SetVertices(vertices); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Triangle) Kind() Kind                               { return KindTriangle }
func (t *Triangle) Equal(f Figure) bool                      { return equal(t, f) }
func (t *Triangle) Clone() Figure                            { return &Triangle{t.clone()} }
func (t *Triangle) SetVertices(vertices []r2.Vec) error      { return t.setVertices(KindTriangle, vertices) }
func (t *Triangle) SetRegular(radius float64, center r2.Vec) { t.setRegular(KindTriangle, radius, center) }
func (t *Triangle) String() string                           { return t.format(KindTriangle) }
func (t *Triangle) MarshalText() ([]byte, error)             { return t.marshal(KindTriangle) }
func (t *Triangle) UnmarshalText(text []byte) error          { return Decoder{}.DecodeInto(t, string(text)) }

func (t *Triangle) payload() *poly {
	if t == nil {
		return nil
	}
	return &t.poly
}

// Hexagon is a figure with 6 vertices. The zero value has no vertices.
type Hexagon struct{ poly }

// NewHexagon returns a regular hexagon of unit circumradius centered at the origin.
func NewHexagon() *Hexagon { return NewRegularHexagon(1, r2.Vec{}) }

// NewRegularHexagon returns a regular hexagon of the given circumradius
// centered at center.
func NewRegularHexagon(radius float64, center r2.Vec) *Hexagon {
	h := &Hexagon{}
	h.SetRegular(radius, center)
	return h
}

// HexagonFrom returns a hexagon with the given 6 vertices.
func HexagonFrom(vertices []r2.Vec) (*Hexagon, error) {
	h := &Hexagon{}
	if err := h.SetVertices(vertices); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Hexagon) Kind() Kind                               { return KindHexagon }
func (h *Hexagon) Equal(f Figure) bool                      { return equal(h, f) }
func (h *Hexagon) Clone() Figure                            { return &Hexagon{h.clone()} }
func (h *Hexagon) SetVertices(vertices []r2.Vec) error      { return h.setVertices(KindHexagon, vertices) }
func (h *Hexagon) SetRegular(radius float64, center r2.Vec) { h.setRegular(KindHexagon, radius, center) }
func (h *Hexagon) String() string                           { return h.format(KindHexagon) }
func (h *Hexagon) MarshalText() ([]byte, error)             { return h.marshal(KindHexagon) }
func (h *Hexagon) UnmarshalText(text []byte) error          { return Decoder{}.DecodeInto(h, string(text)) }

func (h *Hexagon) payload() *poly {
	if h == nil {
		return nil
	}
	return &h.poly
}

// Octagon is a figure with 8 vertices. The zero value has no vertices.
type Octagon struct{ poly }

// NewOctagon returns a regular octagon of unit circumradius centered at the origin.
func NewOctagon() *Octagon { return NewRegularOctagon(1, r2.Vec{}) }

// NewRegularOctagon returns a regular octagon of the given circumradius
// centered at center.
func NewRegularOctagon(radius float64, center r2.Vec) *Octagon {
	o := &Octagon{}
	o.SetRegular(radius, center)
	return o
}

// OctagonFrom returns an octagon with the given 8 vertices.
func OctagonFrom(vertices []r2.Vec) (*Octagon, error) {
	o := &Octagon{}
	if err := o.SetVertices(vertices); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Octagon) Kind() Kind                               { return KindOctagon }
func (o *Octagon) Equal(f Figure) bool                      { return equal(o, f) }
func (o *Octagon) Clone() Figure                            { return &Octagon{o.clone()} }
func (o *Octagon) SetVertices(vertices []r2.Vec) error      { return o.setVertices(KindOctagon, vertices) }
func (o *Octagon) SetRegular(radius float64, center r2.Vec) { o.setRegular(KindOctagon, radius, center) }
func (o *Octagon) String() string                           { return o.format(KindOctagon) }
func (o *Octagon) MarshalText() ([]byte, error)             { return o.marshal(KindOctagon) }
func (o *Octagon) UnmarshalText(text []byte) error          { return Decoder{}.DecodeInto(o, string(text)) }

func (o *Octagon) payload() *poly {
	if o == nil {
		return nil
	}
	return &o.poly
}
