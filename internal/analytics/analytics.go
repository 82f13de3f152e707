// Package analytics derives the secondary statistics report and UI
// consumers compute from a simulation result's cost distribution.
package analytics

import (
	"sort"

	"buildvsbuy/internal/summary"
)

// DefaultHistogramBins matches the distribution chart binning.
const DefaultHistogramBins = 30

// ProbBuildCheaper returns the fraction of simulations whose build cost came
// in strictly below the buy total. Zero for an empty distribution.
func ProbBuildCheaper(distribution []float64, buyTotalCost float64) float64 {
	if len(distribution) == 0 {
		return 0
	}
	below := 0
	for _, c := range distribution {
		if c < buyTotalCost {
			below++
		}
	}
	return float64(below) / float64(len(distribution))
}

// Stddev returns the sample standard deviation of the distribution.
func Stddev(distribution []float64) float64 {
	return summary.Stddev(distribution)
}

// CoefficientOfVariation returns stddev/mean, zero when the mean is zero.
func CoefficientOfVariation(distribution []float64) float64 {
	mean := summary.Mean(distribution)
	if mean == 0 {
		return 0
	}
	return summary.Stddev(distribution) / mean
}

// HistogramBin is one equal-width bin over the cost distribution.
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram partitions the distribution into bins equal-width bins spanning
// [min, max]. A degenerate (constant or empty) distribution yields a single
// bin holding everything.
func Histogram(distribution []float64, bins int) []HistogramBin {
	if len(distribution) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	lo, hi := distribution[0], distribution[0]
	for _, v := range distribution {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return []HistogramBin{{Low: lo, High: hi, Count: len(distribution)}}
	}

	out := make([]HistogramBin, bins)
	width := (hi - lo) / float64(bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = out[i].Low + width
	}
	out[bins-1].High = hi

	for _, v := range distribution {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// CumulativePoint is one (cost, cumulative probability) step of the
// empirical CDF.
type CumulativePoint struct {
	Cost        float64
	Probability float64
}

// CumulativePoints returns the empirical CDF of the distribution, sorted
// ascending by cost.
func CumulativePoints(distribution []float64) []CumulativePoint {
	n := len(distribution)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, distribution)
	sort.Float64s(sorted)

	out := make([]CumulativePoint, n)
	for i, v := range sorted {
		out[i] = CumulativePoint{Cost: v, Probability: float64(i+1) / float64(n)}
	}
	return out
}
