package figure

import (
	"math"

	"github.com/soypat/figure/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Area returns the non-negative shoelace area of the closed polygon with
// the given ordered vertices.
func Area(vertices []r2.Vec) float64 {
	return d2.Set(vertices).Area()
}

// SignedArea returns the shoelace area of the closed polygon with the given
// ordered vertices. It is positive for counter-clockwise order.
func SignedArea(vertices []r2.Vec) float64 {
	return d2.Set(vertices).SignedArea()
}

// Centroid returns the arithmetic mean of the vertices.
func Centroid(vertices []r2.Vec) r2.Vec {
	return d2.Set(vertices).Centroid()
}

// Nagon returns the vertices of an n sided regular polygon with
// circumradius radius centered at center. It returns nil if n < 3.
func Nagon(n int, radius float64, center r2.Vec) []r2.Vec {
	return d2.Nagon(n, radius, center)
}

// CircumradiusFromEdge returns the circumradius of a regular n sided
// polygon with edge length edge.
func CircumradiusFromEdge(n int, edge float64) float64 {
	return edge / (2 * math.Sin(math.Pi/float64(n)))
}
