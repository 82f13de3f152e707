// Package summary reduces the risk-adjusted cost vector and the buy scalar
// into the final simulation result.
package summary

import (
	"math"
	"sort"

	"buildvsbuy/internal/domain"
)

// Summarize scrubs the distribution, computes expectation and percentiles,
// and resolves the recommendation. The scrubbed distribution is retained on
// the result for downstream consumers; the input slice is not mutated.
func Summarize(distribution []float64, buyTotalCost float64) *domain.SimulationResult {
	dist := Scrub(distribution)

	sorted := make([]float64, len(dist))
	copy(sorted, dist)
	sort.Float64s(sorted)

	expected := Mean(dist)
	p10 := Percentile(sorted, 0.10)
	p50 := Percentile(sorted, 0.50)
	p90 := Percentile(sorted, 0.90)

	npvDifference := buyTotalCost - expected

	// Fixed boundary policy: a tie at exactly zero resolves to Buy.
	recommendation := domain.RecommendationBuy
	if npvDifference > 0 {
		recommendation = domain.RecommendationBuild
	}

	return &domain.SimulationResult{
		ExpectedBuildCost: expected,
		BuildCostP10:      p10,
		BuildCostP50:      p50,
		BuildCostP90:      p90,
		RiskAdjustedCost:  p90,
		BuyTotalCost:      buyTotalCost,
		NPVDifference:     npvDifference,
		Recommendation:    recommendation,
		CostDistribution:  dist,
		ConfidenceLevel:   domain.ConfidenceLevel,
	}
}

// Scrub replaces NaN/Inf entries with the mean of the remaining valid
// entries, or zero when nothing is valid. Degenerate parameter combinations
// must degrade to a usable result, not abort the batch.
func Scrub(samples []float64) []float64 {
	out := make([]float64, len(samples))

	var validSum float64
	validCount := 0
	for _, s := range samples {
		if valid(s) {
			validSum += s
			validCount++
		}
	}

	fill := 0.0
	if validCount > 0 {
		fill = validSum / float64(validCount)
	}

	for i, s := range samples {
		if valid(s) {
			out[i] = s
		} else {
			out[i] = fill
		}
	}
	return out
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Mean returns the arithmetic mean, zero for an empty slice.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// Percentile computes percentile p (0.10 = 10th) by linear interpolation
// over a pre-sorted slice.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Stddev computes the sample standard deviation (n-1 denominator).
func Stddev(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	mean := Mean(samples)
	sumSq := 0.0
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}
