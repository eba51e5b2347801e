// Package mesh describes tetrahedral decompositions of a point set by index
// and extracts their boundary surface.
package mesh

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Tetrahedron is four indices into a point set.
type Tetrahedron [4]int

// Facet is three indices into a point set. Two facets are the same facet
// when their canonical forms are equal.
type Facet [3]int

// facetVertices lists the C(4,3) index triples of a tetrahedron.
var facetVertices = [4][3]int{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

// Facets returns the four faces of the tetrahedron in canonical form. Facet i
// is the face opposite vertex t[3-i].
func (t Tetrahedron) Facets() [4]Facet {
	var facets [4]Facet
	for i, fv := range facetVertices {
		facets[i] = Facet{t[fv[0]], t[fv[1]], t[fv[2]]}.Canonical()
	}
	return facets
}

// Canonical returns the facet with its indices in ascending order.
func (f Facet) Canonical() Facet {
	if f[0] > f[1] {
		f[0], f[1] = f[1], f[0]
	}
	if f[1] > f[2] {
		f[1], f[2] = f[2], f[1]
	}
	if f[0] > f[1] {
		f[0], f[1] = f[1], f[0]
	}
	return f
}

func (f Facet) String() string {
	return fmt.Sprintf("(%d, %d, %d)", f[0], f[1], f[2])
}

func (t Tetrahedron) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", t[0], t[1], t[2], t[3])
}

// Less orders canonical facets lexicographically.
func (f Facet) Less(other Facet) bool {
	for i := range f {
		if f[i] != other[i] {
			return f[i] < other[i]
		}
	}
	return false
}

// SortFacets sorts facets lexicographically in place.
func SortFacets(facets []Facet) {
	sort.Slice(facets, func(i, j int) bool {
		return facets[i].Less(facets[j])
	})
}

// Validate checks that every tetrahedron has four pairwise distinct indices
// within [0, numPoints).
func Validate(tetrahedra []Tetrahedron, numPoints int) error {
	for i, t := range tetrahedra {
		for a := 0; a < 4; a++ {
			if t[a] < 0 || t[a] >= numPoints {
				return errors.Errorf("tetrahedron %d %s: index %d out of range [0, %d)", i, t, t[a], numPoints)
			}
			for b := a + 1; b < 4; b++ {
				if t[a] == t[b] {
					return errors.Errorf("tetrahedron %d %s: repeated index %d", i, t, t[a])
				}
			}
		}
	}
	return nil
}
