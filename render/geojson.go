package render

import (
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/soypat/figure"
	"gonum.org/v1/gonum/spatial/r2"
)

// GeoJSON feature property keys.
const (
	propKind   = "kind"
	propArea   = "area"
	propCX     = "cx"
	propCY     = "cy"
	propRadius = "radius"
)

// Feature returns f as a GeoJSON polygon feature. The kind, area and
// center are stored as properties, plus the circumradius for figures in
// their generated state.
func Feature(f figure.Figure) *geojson.Feature {
	v := f.Vertices()
	ring := make([][]float64, 0, len(v)+1)
	for _, p := range v {
		ring = append(ring, []float64{p.X, p.Y})
	}
	if len(v) > 0 {
		ring = append(ring, []float64{v[0].X, v[0].Y})
	}
	feat := geojson.NewPolygonFeature([][][]float64{ring})
	feat.SetProperty(propKind, f.Kind().String())
	feat.SetProperty(propArea, f.Area())
	c := f.Center()
	feat.SetProperty(propCX, c.X)
	feat.SetProperty(propCY, c.Y)
	if r, ok := f.Regular(); ok {
		feat.SetProperty(propRadius, r)
	}
	return feat
}

// FromFeature decodes a feature written by Feature. A feature carrying a
// radius decodes as a regular figure only while its ring still holds the
// regenerated vertices; an edited ring decodes as a custom figure.
func FromFeature(feat *geojson.Feature) (figure.Figure, error) {
	name, err := feat.PropertyString(propKind)
	if err != nil {
		return nil, errors.Wrap(err, "feature kind")
	}
	k, err := figure.ParseKind(name)
	if err != nil {
		return nil, err
	}
	if feat.Geometry == nil || !feat.Geometry.IsPolygon() || len(feat.Geometry.Polygon) == 0 {
		return nil, errors.Errorf("%s feature without polygon geometry", k)
	}
	ring := feat.Geometry.Polygon[0]
	if n := len(ring); n > 1 && equalPosition(ring[0], ring[n-1]) {
		ring = ring[:n-1]
	}
	vertices := make([]r2.Vec, len(ring))
	for i, pos := range ring {
		if len(pos) < 2 {
			return nil, errors.Errorf("%s: position %d has %d coordinates", k, i, len(pos))
		}
		vertices[i] = r2.Vec{X: pos[0], Y: pos[1]}
	}
	custom, err := figure.NewCustom(k, vertices)
	if err != nil {
		return nil, err
	}
	r, err := feat.PropertyFloat64(propRadius)
	if err != nil {
		return custom, nil
	}
	cx, errx := feat.PropertyFloat64(propCX)
	cy, erry := feat.PropertyFloat64(propCY)
	if errx != nil || erry != nil {
		return nil, errors.Errorf("regular %s feature without center", k)
	}
	regular, err := figure.NewRegular(k, r, r2.Vec{X: cx, Y: cy})
	if err != nil {
		return nil, err
	}
	if !regular.Equal(custom) {
		return custom, nil
	}
	return regular, nil
}

// WriteGeoJSON writes the figures of c as a GeoJSON feature collection.
func WriteGeoJSON(w io.Writer, c *figure.Collection) error {
	fc := geojson.NewFeatureCollection()
	err := c.Each(func(_ int, f figure.Figure) error {
		fc.AddFeature(Feature(f))
		return nil
	})
	if err != nil {
		return err
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// ReadGeoJSON reads a feature collection written by WriteGeoJSON.
func ReadGeoJSON(r io.Reader) (*figure.Collection, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, errors.Wrap(err, "decoding GeoJSON")
	}
	c := &figure.Collection{}
	for i, feat := range fc.Features {
		f, err := FromFeature(feat)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
		c.Add(f)
	}
	return c, nil
}

func equalPosition(a, b []float64) bool {
	return len(a) >= 2 && len(b) >= 2 && a[0] == b[0] && a[1] == b[1]
}
