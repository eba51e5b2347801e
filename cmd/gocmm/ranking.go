package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocmm/pkg/analysis"
)

// rankFlags are the listing flags shared by facets and tetra
type rankFlags struct {
	count    int
	largest  bool
	smallest bool
}

func (f *rankFlags) register(cmd *cobra.Command, noun string) {
	cmd.Flags().IntVarP(&f.count, "count", "n", 10, fmt.Sprintf("Number of %s to display (negative for all)", noun))
	cmd.Flags().BoolVarP(&f.largest, "largest", "l", false, fmt.Sprintf("Show largest %s first", noun))
	cmd.Flags().BoolVarP(&f.smallest, "smallest", "s", false, fmt.Sprintf("Show smallest %s first", noun))
	cmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func (f *rankFlags) order() analysis.Order {
	switch {
	case f.largest:
		return analysis.Largest
	case f.smallest:
		return analysis.Smallest
	default:
		return analysis.InputOrder
	}
}

func (f *rankFlags) title(shown int, noun string) string {
	switch f.order() {
	case analysis.Largest:
		return fmt.Sprintf("Top %d Largest %s", shown, noun)
	case analysis.Smallest:
		return fmt.Sprintf("Top %d Smallest %s", shown, noun)
	default:
		return fmt.Sprintf("First %d %s", shown, noun)
	}
}
