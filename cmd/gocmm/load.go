package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipparndt/gocmm/pkg/analysis"
	"github.com/philipparndt/gocmm/pkg/cmm"
	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/stl"
)

// loadPoints reads the point cloud of path and a display name for it. STL
// files contribute their distinct vertices, anything else is read as a
// marker file.
func loadPoints(path string) ([]geometry.Vector3, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		model, err := stl.Parse(path)
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to read %s", path)
		}
		return model.Vertices(), nameOr(model.Name, path), nil
	}

	set, err := cmm.Parse(path)
	if err != nil {
		return nil, "", err
	}
	return set.Points(), nameOr(set.Name, path), nil
}

func nameOr(name, path string) string {
	if name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func analyzeFile(ctx context.Context, path string, opts *rootOptions, withHull bool) (*analysis.Result, string, error) {
	points, name, err := loadPoints(path)
	if err != nil {
		return nil, "", err
	}
	opts.logger.Debugw("loaded points", "path", path, "name", name, "points", len(points))

	result, err := analysis.Analyze(ctx, points, opts.analysisOptions(withHull))
	if err != nil {
		return nil, "", err
	}
	return result, name, nil
}
