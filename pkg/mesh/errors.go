package mesh

import "fmt"

// DegenerateInputError reports a point set that cannot be tetrahedralized:
// fewer than four points, or all points coplanar or collinear.
type DegenerateInputError struct {
	Points int
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input (%d points): %s", e.Points, e.Reason)
}

// FacetConsistencyError reports a facet shared by a number of tetrahedra
// other than one or two. The decomposition is not a manifold and the derived
// volume and area cannot be trusted.
type FacetConsistencyError struct {
	Facet        Facet
	Multiplicity int
}

func (e *FacetConsistencyError) Error() string {
	return fmt.Sprintf("facet %s appears in %d tetrahedra (expected 1 or 2)", e.Facet, e.Multiplicity)
}
