// Package simulation orchestrates the build-vs-buy Monte Carlo pipeline.
package simulation

import (
	"math"
	"time"

	"buildvsbuy/internal/buycost"
	"buildvsbuy/internal/domain"
	"buildvsbuy/internal/observability"
	"buildvsbuy/internal/params"
	"buildvsbuy/internal/presentvalue"
	"buildvsbuy/internal/risk"
	"buildvsbuy/internal/sampling"
	"buildvsbuy/internal/summary"
)

// Defaults for simulator construction.
const (
	DefaultSimulations = 1000
	DefaultSeed        = 42
)

// Simulator runs the build-vs-buy cost simulation. It is stateless across
// calls: each Simulate call seeds a fresh generator, so identical seed and
// parameters reproduce a bit-identical cost distribution. A single instance
// is not safe for concurrent Simulate calls; parallel callers use separate
// instances.
type Simulator struct {
	nSimulations int
	seed         int64
}

// Options configures a Simulator.
type Options struct {
	NSimulations int   // number of Monte Carlo draws, default 1000
	Seed         int64 // PRNG seed, default 42
}

// New creates a simulator, applying defaults for zero-valued options.
func New(opts Options) *Simulator {
	n := opts.NSimulations
	if n <= 0 {
		n = DefaultSimulations
	}
	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Simulator{nSimulations: n, seed: seed}
}

// NSimulations returns the configured batch size.
func (s *Simulator) NSimulations() int { return s.nSimulations }

// Seed returns the configured PRNG seed.
func (s *Simulator) Seed() int64 { return s.seed }

// Simulate runs one full simulation over the raw parameter mapping.
// Steps:
//  1. Extract and normalize parameters into typed groups
//  2. Seed a fresh generator and draw uncertain input vectors
//  3. Convert cost components to present value and sum
//  4. Apply the combined risk premium
//  5. Compute the deterministic buy cost
//  6. Summarize into the result, echoing diagnostic inputs
//
// Malformed numeric input degrades to defaults upstream; Simulate itself
// cannot fail.
func (s *Simulator) Simulate(raw map[string]any) *domain.SimulationResult {
	start := time.Now()

	// 1. Extract parameter groups
	in := params.Extract(raw)

	// 2. Fresh generator per call; draw order is fixed: timeline, fte cost,
	// then (inside the PV engine) maintenance opex, then risk jitter.
	gen := sampling.NewGenerator(s.seed)
	timeline := gen.Normal(in.Core.BuildTimeline, in.Core.BuildTimelineStd, s.nSimulations)
	fteCost := gen.Normal(in.Core.FTECost, in.Core.FTECostStd, s.nSimulations)

	// 3. Present value of all build cost components
	engine := presentvalue.NewEngine(in.Core.WACC)
	buildCost := engine.TotalBuildCostPV(in.Core, in.Cost, timeline, fteCost, gen)

	// 4. Risk premium
	buildCost = risk.Apply(buildCost, in.Risk, gen)
	observability.RecordScrubbed(countInvalid(buildCost))

	// 5. Deterministic buy side
	buyTotal := buycost.Calculate(in.Buy, in.Core)

	// 6. Summarize and echo inputs
	result := summary.Summarize(buildCost, buyTotal)
	result.TechRisk = in.Risk.TechRisk
	result.VendorRisk = in.Risk.VendorRisk
	result.MarketRisk = in.Risk.MarketRisk
	result.ProbSuccess = in.Core.ProbSuccess * 100
	result.WACC = in.Core.WACC * 100
	result.UsefulLife = in.Core.UsefulLife

	observability.RecordSimulation(result.Recommendation, time.Since(start).Seconds(), s.nSimulations)
	return result
}

func countInvalid(samples []float64) int {
	n := 0
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			n++
		}
	}
	return n
}
