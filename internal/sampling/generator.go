// Package sampling provides the seeded sample generation for the Monte Carlo
// pipeline. Each Generator owns its own rand.Rand, so independent simulator
// instances never contend and identical seeds reproduce identically.
package sampling

import "math/rand"

// Generator draws bounded normal sample vectors from a private PRNG.
// Not safe for concurrent use; callers own one generator per run.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducible draws.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Normal draws n samples from N(mean, std). Non-positive samples are replaced
// by the mean (domain truncation: costs and timelines cannot go negative, and
// std/mean ratios are small enough that the bias is negligible). When std is
// zero the vector is constant and the PRNG is not consumed, which keeps the
// draw sequence stable across parameter sets that omit uncertainty.
func (g *Generator) Normal(mean, std float64, n int) []float64 {
	samples := make([]float64, n)
	if std <= 0 {
		for i := range samples {
			samples[i] = mean
		}
		return samples
	}
	for i := range samples {
		s := g.rng.NormFloat64()*std + mean
		if s <= 0 {
			s = mean
		}
		samples[i] = s
	}
	return samples
}

// NormFloat64 exposes a single standard-normal draw for the risk jitter,
// which consumes the generator sequence after all cost draws complete.
func (g *Generator) NormFloat64() float64 {
	return g.rng.NormFloat64()
}
