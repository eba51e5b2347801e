// Package hull computes the convex hull of a point set. A tetrahedralization
// covers exactly the convex hull, so the hull's area and volume are an
// independent check on the boundary facets and tetrahedra.
package hull

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

const defaultEps = 1e-10

// Hull is a triangulated convex hull. Facets index into the input points.
type Hull struct {
	Facets []mesh.Facet
	Area   float64
	Volume float64
}

// Compute returns the convex hull of points. The points must span three
// dimensions.
func Compute(points []geometry.Vector3) (*Hull, error) {
	if len(points) < 4 {
		return nil, &mesh.DegenerateInputError{Points: len(points), Reason: "at least 4 points are required"}
	}

	vertices := make([]r3.Vector, len(points))
	for i, p := range points {
		vertices[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(vertices, true, true, defaultEps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, &mesh.DegenerateInputError{Points: len(points), Reason: "convex hull has no facets"}
	}

	h := &Hull{Facets: make([]mesh.Facet, 0, len(ch.Indices)/3)}
	origin := geometry.BoundsOf(points).Center()
	signed := 0.0
	for i := 0; i < len(ch.Indices); i += 3 {
		f := mesh.Facet{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		a, b, c := points[f[0]], points[f[1]], points[f[2]]

		h.Area += geometry.TriangleFromVertices(a, b, c).Area()
		signed += geometry.NewTetrahedron(origin, a, b, c).SignedVolume()
		h.Facets = append(h.Facets, f.Canonical())
	}
	h.Volume = math.Abs(signed)
	mesh.SortFacets(h.Facets)

	return h, nil
}
