// Package risk applies the combined risk premium to the pre-risk build cost
// vector. The three premiums combine additively; other parts of the wider
// system compound risk multiplicatively, and this divergence is deliberate.
package risk

import (
	"buildvsbuy/internal/domain"
	"buildvsbuy/internal/sampling"
)

// jitterStd is the relative spread of the per-simulation risk multiplier.
const jitterStd = 0.05

// Apply scales costs by the risk multiplier 1 + total_risk/100. For batch
// runs each simulation gets independent Gaussian jitter around the base
// multiplier, floored at 1.0 so risk never reduces cost. The jitter draw
// consumes the generator sequence after all cost draws complete. A zero or
// negative total premium returns the input unchanged.
func Apply(costs []float64, risk domain.RiskParameters, gen *sampling.Generator) []float64 {
	totalPercent := risk.TotalRiskPercent()
	if totalPercent <= 0 {
		return costs
	}

	multiplier := 1 + totalPercent/100
	n := len(costs)
	out := make([]float64, n)

	if n == 1 {
		// Single-shot runs stay deterministic.
		out[0] = costs[0] * multiplier
		return out
	}

	for i := range costs {
		m := multiplier * (1 + gen.NormFloat64()*jitterStd)
		if m < 1.0 {
			m = 1.0
		}
		out[i] = costs[i] * m
	}
	return out
}
