package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a set of per-element measurements
type Stats struct {
	Count  int
	Total  float64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes Stats over values. An empty input yields zero Stats.
func Summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	mean, std := stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		// A single value has no sample deviation.
		std = 0
	}
	return Stats{
		Count:  len(values),
		Total:  floats.Sum(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   mean,
		StdDev: std,
	}
}
