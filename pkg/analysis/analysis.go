// Package analysis derives volume, surface area and related measurements of
// a point cloud from its tetrahedralization.
package analysis

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gocmm/pkg/delaunay"
	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/hull"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

// Options configures Analyze. The zero value uses the default Delaunay
// tetrahedralizer and discards logs.
type Options struct {
	Tetrahedralizer mesh.Tetrahedralizer
	Logger          *zap.SugaredLogger
	// Hull also computes the convex hull as a cross-check.
	Hull bool
}

// Result contains the measurements of a point cloud
type Result struct {
	Points         []geometry.Vector3
	Tetrahedra     []mesh.Tetrahedron
	BoundaryFacets []mesh.Facet
	InteriorFacets int

	Volume      float64
	SurfaceArea float64

	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3

	TetrahedronStats Stats
	FacetStats       Stats

	// ConvexHull is set when Options.Hull is true
	ConvexHull *hull.Hull
}

// Analyze tetrahedralizes points and measures the result. Volume and the
// boundary surface are computed concurrently; both only read points and the
// tetrahedra.
func Analyze(ctx context.Context, points []geometry.Vector3, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	tetrahedralizer := opts.Tetrahedralizer
	if tetrahedralizer == nil {
		tetrahedralizer = delaunay.New(delaunay.WithLogger(logger))
	}

	tetrahedra, err := tetrahedralizer.Tetrahedralize(ctx, points)
	if err != nil {
		return nil, errors.Wrap(err, "tetrahedralization failed")
	}
	if err := mesh.Validate(tetrahedra, len(points)); err != nil {
		return nil, errors.Wrap(err, "invalid tetrahedralization")
	}
	logger.Debugw("tetrahedralization complete", "points", len(points), "tetrahedra", len(tetrahedra))

	result := &Result{
		Points:      points,
		Tetrahedra:  tetrahedra,
		BoundingBox: geometry.BoundsOf(points),
	}
	result.Dimensions = result.BoundingBox.Size()

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		volumes := TetrahedronVolumes(points, tetrahedra)
		result.TetrahedronStats = Summarize(volumes)
		result.Volume = result.TetrahedronStats.Total
		return nil
	})
	g.Go(func() error {
		boundary, interior, err := mesh.CountFacets(tetrahedra).Partition()
		if err != nil {
			return errors.Wrap(err, "boundary extraction failed")
		}
		result.BoundaryFacets = boundary
		result.InteriorFacets = len(interior)
		result.FacetStats = Summarize(FacetAreas(points, boundary))
		result.SurfaceArea = result.FacetStats.Total
		return nil
	})
	if opts.Hull {
		g.Go(func() error {
			h, err := hull.Compute(points)
			if err != nil {
				return errors.Wrap(err, "convex hull failed")
			}
			result.ConvexHull = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debugw("measured",
		"volume", result.Volume,
		"surfaceArea", result.SurfaceArea,
		"boundaryFacets", len(result.BoundaryFacets),
		"interiorFacets", result.InteriorFacets,
	)
	if h := result.ConvexHull; h != nil {
		if !closeTo(h.Volume, result.Volume) || !closeTo(h.Area, result.SurfaceArea) {
			logger.Warnw("tetrahedralization does not match the convex hull",
				"volume", result.Volume, "hullVolume", h.Volume,
				"surfaceArea", result.SurfaceArea, "hullArea", h.Area,
			)
		}
	}
	return result, nil
}

// Sphericity is the surface area of a sphere with the same volume divided by
// the actual surface area; 1 for a sphere, smaller for anything else.
func (r *Result) Sphericity() float64 {
	if r.SurfaceArea == 0 {
		return 0
	}
	return math.Cbrt(math.Pi) * math.Pow(6*r.Volume, 2.0/3.0) / r.SurfaceArea
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(math.Abs(a), math.Abs(b))
}
