package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gocmm/pkg/analysis"
	"github.com/philipparndt/gocmm/pkg/mesh"
	"github.com/philipparndt/gocmm/pkg/stl"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the outer surface as a binary STL file",
		Long:  "Write the boundary facets of the tetrahedralization with outward facing normals.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, name, err := analyzeFile(cmd.Context(), args[0], opts, false)
			if err != nil {
				return err
			}

			facets, err := mesh.OrientBoundary(result.Points, result.Tetrahedra)
			if err != nil {
				return errors.Wrap(err, "failed to orient boundary")
			}
			model := stl.FromSurface(name, result.Points, facets)
			if err := stl.Write(output, model); err != nil {
				return errors.Wrapf(err, "failed to write %s", output)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d triangles to %s\n", model.TriangleCount(), output)
			fmt.Fprintf(out, "  Enclosed volume: %s\n", analysis.FormatMeasurement(model.Volume(), "Å³"))
			fmt.Fprintf(out, "  Surface area: %s\n", analysis.FormatMeasurement(model.SurfaceArea(), "Å²"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output STL file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
