package mesh

import (
	"go.uber.org/multierr"
)

// FacetCounts maps a canonical facet to the number of tetrahedra it belongs to.
type FacetCounts map[Facet]int

// CountFacets builds the facet multiplicity table of a decomposition. The
// counts always sum to 4 * len(tetrahedra).
func CountFacets(tetrahedra []Tetrahedron) FacetCounts {
	counts := make(FacetCounts, 2*len(tetrahedra)+4)
	for _, t := range tetrahedra {
		for _, f := range t.Facets() {
			counts[f]++
		}
	}
	return counts
}

// Total returns the number of facet occurrences counted.
func (c FacetCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Partition splits the table into boundary facets (multiplicity 1) and
// interior facets (multiplicity 2), both sorted. Every facet with another
// multiplicity is reported as a *FacetConsistencyError; all of them are
// combined into the returned error.
func (c FacetCounts) Partition() (boundary, interior []Facet, err error) {
	var violations []Facet
	for f, n := range c {
		switch n {
		case 1:
			boundary = append(boundary, f)
		case 2:
			interior = append(interior, f)
		default:
			violations = append(violations, f)
		}
	}
	if len(violations) > 0 {
		SortFacets(violations)
		for _, f := range violations {
			err = multierr.Append(err, &FacetConsistencyError{Facet: f, Multiplicity: c[f]})
		}
		return nil, nil, err
	}
	SortFacets(boundary)
	SortFacets(interior)
	return boundary, interior, nil
}

// BoundaryFacets returns the facets that belong to exactly one tetrahedron,
// sorted lexicographically and without duplicates. These form the outer
// surface of the decomposition.
func BoundaryFacets(tetrahedra []Tetrahedron) ([]Facet, error) {
	boundary, _, err := CountFacets(tetrahedra).Partition()
	return boundary, err
}
