package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocmm/pkg/analysis"
)

func newFacetsCmd(opts *rootOptions) *cobra.Command {
	flags := &rankFlags{}
	cmd := &cobra.Command{
		Use:   "facets [file]",
		Short: "List the boundary facets of a point cloud",
		Long:  "Display the facets of the outer surface with area, perimeter and vertex positions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := analyzeFile(cmd.Context(), args[0], opts, false)
			if err != nil {
				return err
			}
			printFacets(cmd.OutOrStdout(), result, flags)
			return nil
		},
	}
	flags.register(cmd, "facets")
	return cmd
}

func printFacets(out io.Writer, result *analysis.Result, flags *rankFlags) {
	facets := analysis.RankFacets(result, flags.order(), flags.count)
	s := result.FacetStats

	fmt.Fprintln(out, flags.title(len(facets), "Facets"))
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total facets: %d\n", s.Count)
	fmt.Fprintf(out, "Total surface area: %s\n", analysis.FormatMeasurement(s.Total, "Å²"))
	fmt.Fprintf(out, "Min facet area: %s\n", analysis.FormatMeasurement(s.Min, "Å²"))
	fmt.Fprintf(out, "Max facet area: %s\n", analysis.FormatMeasurement(s.Max, "Å²"))
	fmt.Fprintf(out, "Avg facet area: %s\n\n", analysis.FormatMeasurement(s.Mean, "Å²"))

	for _, f := range facets {
		fmt.Fprintf(out, "Facet #%d %s:\n", f.Index, f.Facet)
		fmt.Fprintf(out, "  Area: %s\n", analysis.FormatMeasurement(f.Area, "Å²"))
		fmt.Fprintf(out, "  Perimeter: %s\n", analysis.FormatMeasurement(f.Perimeter, "Å"))
		fmt.Fprintf(out, "  Vertices: %s, %s, %s\n\n",
			analysis.FormatVector(f.Triangle.V1),
			analysis.FormatVector(f.Triangle.V2),
			analysis.FormatVector(f.Triangle.V3))
	}
}
