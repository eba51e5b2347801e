package analysis

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

var unitPoints = []geometry.Vector3{
	geometry.NewVector3(0, 0, 0),
	geometry.NewVector3(1, 0, 0),
	geometry.NewVector3(0, 1, 0),
	geometry.NewVector3(0, 0, 1),
}

// gluedPoints are the unit tetrahedron plus a fifth point across the face
// (1, 2, 3).
var gluedPoints = append(append([]geometry.Vector3{}, unitPoints...), geometry.NewVector3(1, 1, 1))

var gluedTetrahedra = []mesh.Tetrahedron{{0, 1, 2, 3}, {1, 2, 3, 4}}

func assertRelative(t *testing.T, want, got float64) {
	t.Helper()
	assert.LessOrEqual(t, math.Abs(got-want), 1e-9*math.Abs(want), "want %v, got %v", want, got)
}

func TestUnitTetrahedron(t *testing.T) {
	tets := []mesh.Tetrahedron{{0, 1, 2, 3}}
	boundary, err := mesh.BoundaryFacets(tets)
	require.NoError(t, err)

	volume := Volume(unitPoints, tets)
	area := SurfaceArea(unitPoints, boundary)

	assertRelative(t, 1.0/6.0, volume)
	assertRelative(t, (3+math.Sqrt(3))/2, area)
	assert.Equal(t, "volume = 1.67E-01 Å³", FormatVolume(volume))
	assert.Equal(t, "surface_area = 2.37E+00 Å²", FormatSurfaceArea(area))
}

func TestRegularTetrahedron(t *testing.T) {
	a := 3.0
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(a, 0, 0),
		geometry.NewVector3(a/2, a*math.Sqrt(3)/2, 0),
		geometry.NewVector3(a/2, a*math.Sqrt(3)/6, a*math.Sqrt(2.0/3.0)),
	}

	result, err := Analyze(context.Background(), points, Options{Tetrahedralizer: mesh.Fixed(mesh.Tetrahedron{0, 1, 2, 3})})
	require.NoError(t, err)

	assertRelative(t, a*a*a/(6*math.Sqrt2), result.Volume)
	assertRelative(t, math.Sqrt(3)*a*a, result.SurfaceArea)
}

func TestOrientationIndependence(t *testing.T) {
	base := Volume(unitPoints, []mesh.Tetrahedron{{0, 1, 2, 3}})
	for _, tet := range []mesh.Tetrahedron{{1, 0, 2, 3}, {3, 2, 1, 0}, {2, 3, 0, 1}, {0, 3, 1, 2}} {
		assert.Equal(t, base, Volume(unitPoints, []mesh.Tetrahedron{tet}), "tetrahedron %v", tet)
	}

	face := SurfaceArea(gluedPoints, []mesh.Facet{{1, 2, 4}})
	for _, f := range []mesh.Facet{{2, 1, 4}, {4, 2, 1}, {1, 4, 2}} {
		assert.InDelta(t, face, SurfaceArea(gluedPoints, []mesh.Facet{f}), 1e-15, "facet %v", f)
	}
}

func TestTwoGluedTetrahedra(t *testing.T) {
	result, err := Analyze(context.Background(), gluedPoints, Options{Tetrahedralizer: mesh.Fixed(gluedTetrahedra...)})
	require.NoError(t, err)

	assert.Len(t, result.BoundaryFacets, 6)
	assert.Equal(t, 1, result.InteriorFacets)
	assert.NotContains(t, result.BoundaryFacets, mesh.Facet{1, 2, 3})

	first := Volume(gluedPoints, gluedTetrahedra[:1])
	second := Volume(gluedPoints, gluedTetrahedra[1:])
	assertRelative(t, first+second, result.Volume)
	assertRelative(t, 0.5, result.Volume)
	assertRelative(t, 1.5+3*math.Sqrt(3)/2, result.SurfaceArea)
}

func TestAnalyzeIdempotent(t *testing.T) {
	opts := Options{Tetrahedralizer: mesh.Fixed(gluedTetrahedra...)}

	first, err := Analyze(context.Background(), gluedPoints, opts)
	require.NoError(t, err)
	second, err := Analyze(context.Background(), gluedPoints, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Volume, second.Volume)
	assert.Equal(t, first.SurfaceArea, second.SurfaceArea)
	assert.Equal(t, first.BoundaryFacets, second.BoundaryFacets)
}

func TestAnalyzeDefaultTetrahedralizerMatchesHull(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	gaussian := make([]geometry.Vector3, 150)
	for i := range gaussian {
		gaussian[i] = geometry.NewVector3(rng.NormFloat64()*4, rng.NormFloat64()*2, rng.NormFloat64()*3)
	}
	slab := make([]geometry.Vector3, 300)
	for i := range slab {
		slab[i] = geometry.NewVector3(rng.Float64()*100, rng.Float64()*100, rng.Float64()*0.01)
	}

	for name, points := range map[string][]geometry.Vector3{"gaussian": gaussian, "thin slab": slab} {
		t.Run(name, func(t *testing.T) {
			result, err := Analyze(context.Background(), points, Options{Hull: true})
			require.NoError(t, err)
			require.NotNil(t, result.ConvexHull)

			assertRelative(t, result.ConvexHull.Volume, result.Volume)
			assertRelative(t, result.ConvexHull.Area, result.SurfaceArea)
			assert.Equal(t, result.ConvexHull.Facets, result.BoundaryFacets)
			assert.Equal(t, 4*len(result.Tetrahedra), 2*result.InteriorFacets+len(result.BoundaryFacets))
		})
	}
}

func TestAnalyzeCube(t *testing.T) {
	var points []geometry.Vector3
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				points = append(points, geometry.NewVector3(x, y, z))
			}
		}
	}

	result, err := Analyze(context.Background(), points, Options{Hull: true})
	require.NoError(t, err)

	assertRelative(t, 8, result.Volume)
	assertRelative(t, 24, result.SurfaceArea)
	assertRelative(t, 8, result.ConvexHull.Volume)
	assert.InDelta(t, 0.805996, result.Sphericity(), 1e-6)
	assert.Equal(t, geometry.NewVector3(2, 2, 2), result.Dimensions)
}

func TestAnalyzeDegenerateInput(t *testing.T) {
	_, err := Analyze(context.Background(), nil, Options{})

	var degenerate *mesh.DegenerateInputError
	require.True(t, errors.As(err, &degenerate), "got %v", err)
	assert.Equal(t, 0, degenerate.Points)
}

func TestAnalyzeFacetConsistency(t *testing.T) {
	points := append(append([]geometry.Vector3{}, gluedPoints...), geometry.NewVector3(-1, -1, -1))
	hinged := mesh.Fixed(
		mesh.Tetrahedron{0, 1, 2, 3},
		mesh.Tetrahedron{1, 2, 3, 4},
		mesh.Tetrahedron{1, 2, 3, 5},
	)

	result, err := Analyze(context.Background(), points, Options{Tetrahedralizer: hinged})
	assert.Nil(t, result)

	var consistency *mesh.FacetConsistencyError
	require.True(t, errors.As(err, &consistency), "got %v", err)
	assert.Equal(t, mesh.Facet{1, 2, 3}, consistency.Facet)
	assert.Equal(t, 3, consistency.Multiplicity)
}

func TestAnalyzeRejectsInvalidTetrahedra(t *testing.T) {
	bad := mesh.TetrahedralizerFunc(func(context.Context, []geometry.Vector3) ([]mesh.Tetrahedron, error) {
		return []mesh.Tetrahedron{{0, 1, 2, 9}}, nil
	})

	_, err := Analyze(context.Background(), unitPoints, Options{Tetrahedralizer: bad})
	assert.ErrorContains(t, err, "invalid tetrahedralization")
}

func TestAnalyzeWarnsOnHullMismatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()

	// Only the first of the two tetrahedra spanning the hull.
	_, err := Analyze(context.Background(), gluedPoints, Options{
		Tetrahedralizer: mesh.Fixed(gluedTetrahedra[0]),
		Logger:          logger,
		Hull:            true,
	})
	require.NoError(t, err)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("tetrahedralization does not match the convex hull")
	assert.Equal(t, 1, warnings.Len())
}

func TestSummarize(t *testing.T) {
	stats := Summarize([]float64{1, 2, 3, 4})

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 10.0, stats.Total)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 4.0, stats.Max)
	assert.Equal(t, 2.5, stats.Mean)
	assert.InDelta(t, math.Sqrt(5.0/3.0), stats.StdDev, 1e-12)

	assert.Equal(t, Stats{}, Summarize(nil))
	assert.Equal(t, Stats{Count: 1, Total: 7, Min: 7, Max: 7, Mean: 7}, Summarize([]float64{7}))
}

func TestRanking(t *testing.T) {
	result, err := Analyze(context.Background(), gluedPoints, Options{Tetrahedralizer: mesh.Fixed(gluedTetrahedra...)})
	require.NoError(t, err)

	largest := RankTetrahedra(result, Largest, 1)
	require.Len(t, largest, 1)
	assert.Equal(t, 1, largest[0].Index)
	assert.InDelta(t, 1.0/3.0, largest[0].Volume, 1e-12)
	assert.InDelta(t, 2*math.Sqrt(3), largest[0].SurfaceArea, 1e-12)

	all := RankTetrahedra(result, InputOrder, 10)
	require.Len(t, all, 2)
	assert.InDelta(t, (3+math.Sqrt(3))/2, all[0].SurfaceArea, 1e-12)

	smallest := RankFacets(result, Smallest, 3)
	require.Len(t, smallest, 3)
	for _, f := range smallest {
		assert.InDelta(t, 0.5, f.Area, 1e-12)
	}
	biggest := RankFacets(result, Largest, -1)
	require.Len(t, biggest, 6)
	assert.InDelta(t, math.Sqrt(3)/2, biggest[0].Area, 1e-12)
}
