package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocmm/pkg/analysis"
)

func newTetraCmd(opts *rootOptions) *cobra.Command {
	flags := &rankFlags{}
	cmd := &cobra.Command{
		Use:     "tetra [file]",
		Aliases: []string{"tetrahedra"},
		Short:   "List the tetrahedra of a point cloud",
		Long:    "Display the tetrahedra of the tetrahedralization with volume, surface area and centroid.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := analyzeFile(cmd.Context(), args[0], opts, false)
			if err != nil {
				return err
			}
			printTetrahedra(cmd.OutOrStdout(), result, flags)
			return nil
		},
	}
	flags.register(cmd, "tetrahedra")
	return cmd
}

func printTetrahedra(out io.Writer, result *analysis.Result, flags *rankFlags) {
	tetrahedra := analysis.RankTetrahedra(result, flags.order(), flags.count)
	s := result.TetrahedronStats

	fmt.Fprintln(out, flags.title(len(tetrahedra), "Tetrahedra"))
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total tetrahedra: %d\n", s.Count)
	fmt.Fprintf(out, "Total volume: %s\n", analysis.FormatMeasurement(s.Total, "Å³"))
	fmt.Fprintf(out, "Min volume: %s\n", analysis.FormatMeasurement(s.Min, "Å³"))
	fmt.Fprintf(out, "Max volume: %s\n", analysis.FormatMeasurement(s.Max, "Å³"))
	fmt.Fprintf(out, "Avg volume: %s\n\n", analysis.FormatMeasurement(s.Mean, "Å³"))

	for _, t := range tetrahedra {
		fmt.Fprintf(out, "Tetrahedron #%d %s:\n", t.Index, t.Tetrahedron)
		fmt.Fprintf(out, "  Volume: %s\n", analysis.FormatMeasurement(t.Volume, "Å³"))
		fmt.Fprintf(out, "  Surface area: %s\n", analysis.FormatMeasurement(t.SurfaceArea, "Å²"))
		fmt.Fprintf(out, "  Centroid: %s\n\n", analysis.FormatVector(t.Centroid))
	}
}
