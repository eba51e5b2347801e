package hull

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

func TestComputeUnitTetrahedron(t *testing.T) {
	h, err := Compute([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 1),
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0/6.0, h.Volume, 1e-12)
	assert.InDelta(t, (3+math.Sqrt(3))/2, h.Area, 1e-12)
	assert.Equal(t, []mesh.Facet{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, h.Facets)
}

func TestComputeIgnoresInteriorPoints(t *testing.T) {
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 3, 0),
		geometry.NewVector3(0, 0, 3),
		geometry.NewVector3(0.5, 0.5, 0.5),
	}

	h, err := Compute(points)
	require.NoError(t, err)

	assert.InDelta(t, 4.5, h.Volume, 1e-9)
	for _, f := range h.Facets {
		assert.NotContains(t, f[:], 4)
	}
}

func TestComputeTooFewPoints(t *testing.T) {
	_, err := Compute([]geometry.Vector3{geometry.NewVector3(0, 0, 0)})

	var degenerate *mesh.DegenerateInputError
	assert.True(t, errors.As(err, &degenerate))
}
