package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocmm/pkg/geometry"
)

func TestOrientBoundaryPointsOutward(t *testing.T) {
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(1, 1, 1),
	}
	tetrahedra := []Tetrahedron{{2, 0, 1, 3}, {4, 3, 2, 1}}

	oriented, err := OrientBoundary(points, tetrahedra)
	require.NoError(t, err)
	require.Len(t, oriented, 6)

	centroid := geometry.Vector3{}
	for _, p := range points {
		centroid = centroid.Add(p.Mul(1.0 / float64(len(points))))
	}
	for _, f := range oriented {
		tri := geometry.TriangleFromVertices(points[f[0]], points[f[1]], points[f[2]])
		outward := tri.Center().Sub(centroid)
		assert.Greater(t, tri.Normal.Dot(outward), 0.0, "facet %v faces inward", f)
	}
}

func TestOrientBoundaryPropagatesConsistencyErrors(t *testing.T) {
	points := make([]geometry.Vector3, 4)
	tet := Tetrahedron{0, 1, 2, 3}

	_, err := OrientBoundary(points, []Tetrahedron{tet, tet, tet})
	assert.Error(t, err)
}
