package render

import (
	"github.com/pkg/errors"
	"github.com/soypat/figure"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"gonum.org/v1/gonum/spatial/r2"
)

// Geom returns f as a go-geom polygon with a single closed ring.
func Geom(f figure.Figure) *geom.Polygon {
	v := f.Vertices()
	ring := make([]geom.Coord, 0, len(v)+1)
	for _, p := range v {
		ring = append(ring, geom.Coord{p.X, p.Y})
	}
	if len(v) > 0 {
		ring = append(ring, geom.Coord{v[0].X, v[0].Y})
	}
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring})
}

// FromGeom returns a custom figure of kind k from the outer ring of g.
// The ring may be closed or open.
func FromGeom(k figure.Kind, g *geom.Polygon) (figure.Figure, error) {
	if g.NumLinearRings() == 0 {
		return nil, errors.Wrapf(figure.ErrArity, "%s: polygon has no rings", k)
	}
	if g.NumLinearRings() > 1 {
		return nil, errors.Errorf("%s: polygons with holes are not supported", k)
	}
	coords := g.LinearRing(0).Coords()
	if n := len(coords); n > 1 && coords[0].Equal(g.Layout(), coords[n-1]) {
		coords = coords[:n-1]
	}
	vertices := make([]r2.Vec, len(coords))
	for i, c := range coords {
		vertices[i] = r2.Vec{X: c.X(), Y: c.Y()}
	}
	return figure.NewCustom(k, vertices)
}

// MarshalWKT returns f as a single line WKT POLYGON.
func MarshalWKT(f figure.Figure) (string, error) {
	return wkt.Marshal(Geom(f))
}

// UnmarshalWKT decodes a WKT POLYGON into a figure of kind k.
func UnmarshalWKT(k figure.Kind, s string) (figure.Figure, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding WKT")
	}
	poly, ok := g.(*geom.Polygon)
	if !ok {
		return nil, errors.Errorf("want WKT POLYGON, got %T", g)
	}
	return FromGeom(k, poly)
}
