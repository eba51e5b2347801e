package analysis

import (
	"sort"

	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

// TetrahedronInfo describes one tetrahedron of a result
type TetrahedronInfo struct {
	Index       int
	Tetrahedron mesh.Tetrahedron
	Volume      float64
	SurfaceArea float64
	Centroid    geometry.Vector3
}

// FacetInfo describes one boundary facet of a result
type FacetInfo struct {
	Index     int
	Facet     mesh.Facet
	Area      float64
	Perimeter float64
	Triangle  geometry.Triangle
}

// Order selects how ranked listings are sorted
type Order int

const (
	// InputOrder keeps tetrahedra as produced and facets in canonical order
	InputOrder Order = iota
	Largest
	Smallest
)

// RankTetrahedra returns up to count tetrahedra in the given order
func RankTetrahedra(result *Result, order Order, count int) []TetrahedronInfo {
	infos := make([]TetrahedronInfo, len(result.Tetrahedra))
	for i, t := range result.Tetrahedra {
		tet := Tetrahedron(result.Points, t)
		area := 0.0
		for _, face := range tet.Faces() {
			area += face.Area()
		}
		infos[i] = TetrahedronInfo{
			Index:       i,
			Tetrahedron: t,
			Volume:      tet.Volume(),
			SurfaceArea: area,
			Centroid:    tet.Centroid(),
		}
	}

	switch order {
	case Largest:
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Volume > infos[j].Volume })
	case Smallest:
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Volume < infos[j].Volume })
	}
	return truncate(infos, count)
}

// RankFacets returns up to count boundary facets in the given order
func RankFacets(result *Result, order Order, count int) []FacetInfo {
	infos := make([]FacetInfo, len(result.BoundaryFacets))
	for i, f := range result.BoundaryFacets {
		tri := Triangle(result.Points, f)
		infos[i] = FacetInfo{
			Index:     i,
			Facet:     f,
			Area:      tri.Area(),
			Perimeter: tri.Perimeter(),
			Triangle:  tri,
		}
	}

	switch order {
	case Largest:
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Area > infos[j].Area })
	case Smallest:
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Area < infos[j].Area })
	}
	return truncate(infos, count)
}

func truncate[T any](items []T, count int) []T {
	if count < 0 || count > len(items) {
		count = len(items)
	}
	return items[:count]
}
