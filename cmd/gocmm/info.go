package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocmm/pkg/analysis"
)

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Display general information about a point cloud",
		Long: `Show point and tetrahedron counts, the bounding box, volume and surface area,
the convex hull cross-check and statistics over tetrahedra and boundary facets.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			result, name, err := analyzeFile(cmd.Context(), filename, opts, true)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), filename, name, result)
			return nil
		},
	}
}

func printInfo(out io.Writer, filename, name string, result *analysis.Result) {
	fmt.Fprintln(out, "Point Cloud Information")
	fmt.Fprintln(out, "=======================")
	fmt.Fprintf(out, "Name: %s\n", name)
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Tetrahedralization:")
	fmt.Fprintf(out, "  Points: %d\n", len(result.Points))
	fmt.Fprintf(out, "  Tetrahedra: %d\n", len(result.Tetrahedra))
	fmt.Fprintf(out, "  Boundary facets: %d\n", len(result.BoundaryFacets))
	fmt.Fprintf(out, "  Interior facets: %d\n\n", result.InteriorFacets)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Fprintf(out, "  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Fprintf(out, "  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
	fmt.Fprintf(out, "  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	fmt.Fprintf(out, "  Box volume: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Volume(), "Å³"))

	fmt.Fprintln(out, "Measurements:")
	fmt.Fprintf(out, "  %s\n", analysis.FormatVolume(result.Volume))
	fmt.Fprintf(out, "  %s\n", analysis.FormatSurfaceArea(result.SurfaceArea))
	fmt.Fprintf(out, "  Sphericity: %.6f\n", result.Sphericity())
	if h := result.ConvexHull; h != nil {
		fmt.Fprintf(out, "  Convex hull volume: %s\n", analysis.FormatMeasurement(h.Volume, "Å³"))
		fmt.Fprintf(out, "  Convex hull area: %s\n", analysis.FormatMeasurement(h.Area, "Å²"))
	}
	fmt.Fprintln(out)

	printStats(out, "Tetrahedron Volumes", "Å³", result.TetrahedronStats)
	printStats(out, "Boundary Facet Areas", "Å²", result.FacetStats)
}

func printStats(out io.Writer, title, unit string, s analysis.Stats) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintf(out, "  Count: %d\n", s.Count)
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(s.Min, unit))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(s.Max, unit))
	fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(s.Mean, unit))
	fmt.Fprintf(out, "  Std. deviation: %s\n", analysis.FormatMeasurement(s.StdDev, unit))
}
