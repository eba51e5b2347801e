package mesh

import (
	"context"

	"github.com/philipparndt/gocmm/pkg/geometry"
)

// Tetrahedralizer decomposes the convex hull of a point set into tetrahedra
// referencing the points by index. Implementations return a
// *DegenerateInputError when the points do not span three dimensions.
type Tetrahedralizer interface {
	Tetrahedralize(ctx context.Context, points []geometry.Vector3) ([]Tetrahedron, error)
}

// TetrahedralizerFunc adapts a function to the Tetrahedralizer interface.
type TetrahedralizerFunc func(ctx context.Context, points []geometry.Vector3) ([]Tetrahedron, error)

// Tetrahedralize calls f(ctx, points).
func (f TetrahedralizerFunc) Tetrahedralize(ctx context.Context, points []geometry.Vector3) ([]Tetrahedron, error) {
	return f(ctx, points)
}

// Fixed returns a Tetrahedralizer that always yields the given tetrahedra.
// It is meant for hand-built decompositions.
func Fixed(tetrahedra ...Tetrahedron) Tetrahedralizer {
	return TetrahedralizerFunc(func(ctx context.Context, points []geometry.Vector3) ([]Tetrahedron, error) {
		if err := Validate(tetrahedra, len(points)); err != nil {
			return nil, err
		}
		return tetrahedra, nil
	})
}
