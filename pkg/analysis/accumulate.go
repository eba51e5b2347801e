package analysis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

// Tetrahedron resolves the indices of t against points
func Tetrahedron(points []geometry.Vector3, t mesh.Tetrahedron) geometry.Tetrahedron {
	return geometry.NewTetrahedron(points[t[0]], points[t[1]], points[t[2]], points[t[3]])
}

// Triangle resolves the indices of f against points
func Triangle(points []geometry.Vector3, f mesh.Facet) geometry.Triangle {
	return geometry.TriangleFromVertices(points[f[0]], points[f[1]], points[f[2]])
}

// TetrahedronVolumes returns the unsigned volume of each tetrahedron
func TetrahedronVolumes(points []geometry.Vector3, tetrahedra []mesh.Tetrahedron) []float64 {
	volumes := make([]float64, len(tetrahedra))
	for i, t := range tetrahedra {
		volumes[i] = Tetrahedron(points, t).Volume()
	}
	return volumes
}

// FacetAreas returns the area of each facet
func FacetAreas(points []geometry.Vector3, facets []mesh.Facet) []float64 {
	areas := make([]float64, len(facets))
	for i, f := range facets {
		areas[i] = Triangle(points, f).Area()
	}
	return areas
}

// Volume sums the unsigned volumes of all tetrahedra. Each tetrahedron
// contributes once and degenerate ones contribute zero.
func Volume(points []geometry.Vector3, tetrahedra []mesh.Tetrahedron) float64 {
	return floats.Sum(TetrahedronVolumes(points, tetrahedra))
}

// SurfaceArea sums the triangle areas of the given boundary facets
func SurfaceArea(points []geometry.Vector3, boundary []mesh.Facet) float64 {
	return floats.Sum(FacetAreas(points, boundary))
}
