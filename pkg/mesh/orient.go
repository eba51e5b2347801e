package mesh

import (
	"github.com/philipparndt/gocmm/pkg/geometry"
)

// OrientBoundary returns the boundary facets with their vertices ordered so
// that the right-hand normal points away from the tetrahedron they bound.
// Facets are sorted by canonical form; the order within each facet is not
// canonical.
func OrientBoundary(points []geometry.Vector3, tetrahedra []Tetrahedron) ([]Facet, error) {
	counts := make(FacetCounts, 2*len(tetrahedra)+4)
	inner := make(map[Facet]int, 2*len(tetrahedra)+4)
	for _, t := range tetrahedra {
		for i, f := range t.Facets() {
			counts[f]++
			// Facets()[i] omits vertex 3-i.
			inner[f] = t[3-i]
		}
	}

	boundary, _, err := counts.Partition()
	if err != nil {
		return nil, err
	}

	oriented := make([]Facet, len(boundary))
	for i, f := range boundary {
		a, b, c := points[f[0]], points[f[1]], points[f[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Dot(points[inner[f]].Sub(a)) > 0 {
			f[1], f[2] = f[2], f[1]
		}
		oriented[i] = f
	}
	return oriented, nil
}
