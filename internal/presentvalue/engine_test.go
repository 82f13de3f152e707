package presentvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"buildvsbuy/internal/domain"
	"buildvsbuy/internal/sampling"
)

func TestLaborPV_SingleYearMidpoint(t *testing.T) {
	e := NewEngine(0.10)

	// 12-month timeline: full amount discounted from the year midpoint.
	// 240000 / 1.1^0.5 = 228831.03
	pv := e.LaborPV([]float64{240000}, []float64{12})
	assert.InDelta(t, 228831.03, pv[0], 0.5)

	// Shorter timelines still use the single-year midpoint exponent.
	pv = e.LaborPV([]float64{240000}, []float64{6})
	assert.InDelta(t, 228831.03, pv[0], 0.5)
}

func TestLaborPV_MultiYearSplit(t *testing.T) {
	e := NewEngine(0.10)

	// 30 months = 2.5 years, cost_per_year = 300000/2.5 = 120000.
	// Year 0: 120000/1.1^0.5 = 114415.52
	// Year 1: 120000/1.1^1.5 = 104014.11
	// Partial: 60000 discounted from midpoint 2.25 → 60000/1.1^2.25 = 48419.33
	pv := e.LaborPV([]float64{300000}, []float64{30})
	assert.InDelta(t, 266848.96, pv[0], 2.0)
}

func TestLaborPV_ZeroTimelineContributesZero(t *testing.T) {
	e := NewEngine(0.10)
	pv := e.LaborPV([]float64{0}, []float64{0})
	assert.Equal(t, 0.0, pv[0])
}

func TestLaborPV_WACCMonotonic(t *testing.T) {
	// Increasing the discount rate must not increase any labor PV.
	low := NewEngine(0.05).LaborPV([]float64{500000, 500000}, []float64{12, 30})
	high := NewEngine(0.15).LaborPV([]float64{500000, 500000}, []float64{12, 30})

	for i := range low {
		if high[i] > low[i] {
			t.Errorf("timeline %d: PV rose with WACC: %f > %f", i, high[i], low[i])
		}
	}
}

func TestAmortizationPV_CompoundedMonthlyRate(t *testing.T) {
	e := NewEngine(0.10)

	// monthly_rate = 1.1^(1/12)-1 = 0.0079741, so (1+r)^12 = 1.1 exactly.
	// 12-month annuity of 1000: 1000 * (1 - 1/1.1) / r = 11400.55
	pv := e.AmortizationPV(1000, []float64{12})
	assert.InDelta(t, 11400.55, pv[0], 0.5)
}

func TestAmortizationPV_RoundsTimeline(t *testing.T) {
	e := NewEngine(0.10)

	// 11.6 months rounds to 12; 0.4 rounds to 0 and contributes nothing.
	pv := e.AmortizationPV(1000, []float64{11.6, 0.4})
	assert.InDelta(t, 11400.55, pv[0], 0.5)
	assert.Equal(t, 0.0, pv[1])
}

func TestAmortizationPV_ZeroPayment(t *testing.T) {
	e := NewEngine(0.10)
	pv := e.AmortizationPV(0, []float64{12, 24})
	assert.Equal(t, []float64{0, 0}, pv)
}

func TestOpexPV_AnnualAnnuity(t *testing.T) {
	e := NewEngine(0.10)
	gen := sampling.NewGenerator(42)

	// Deterministic opex 10000 over 5 years at 10%:
	// 10000 * (1/1.1 + 1/1.21 + 1/1.331 + 1/1.4641 + 1/1.61051) = 37907.87
	cost := domain.CostParameters{MaintOpex: 10000, MaintOpexStd: 0}
	pv := e.OpexPV(cost, 5, gen, 3)

	for i := range pv {
		assert.InDelta(t, 37907.87, pv[i], 0.5)
	}
}

func TestOpexPV_AbsentOpexDrawsNothing(t *testing.T) {
	e := NewEngine(0.10)

	// With no maintenance opex the generator sequence must stay untouched.
	g1 := sampling.NewGenerator(7)
	g2 := sampling.NewGenerator(7)

	pv := e.OpexPV(domain.CostParameters{MaintOpex: 0, MaintOpexStd: 500}, 5, g1, 10)
	assert.Equal(t, make([]float64, 10), pv)

	a := g1.Normal(1, 1, 5)
	b := g2.Normal(1, 1, 5)
	assert.Equal(t, b, a)
}

func TestOpexPV_ZeroUsefulLife(t *testing.T) {
	e := NewEngine(0.10)
	gen := sampling.NewGenerator(42)

	pv := e.OpexPV(domain.CostParameters{MaintOpex: 10000}, 0.4, gen, 2)
	assert.Equal(t, []float64{0, 0}, pv)
}

func TestTotalBuildCostPV_ComponentSum(t *testing.T) {
	e := NewEngine(0.10)
	gen := sampling.NewGenerator(42)

	core := domain.SimulationParameters{
		FTECount:    2,
		ProbSuccess: 1.0,
		UsefulLife:  5,
		MiscCosts:   5000,
		WACC:        0.10,
	}
	cost := domain.CostParameters{CapEx: 50000}

	// timeline 12 months, fte_cost 120000, 2 FTEs → nominal labor 240000
	total := e.TotalBuildCostPV(core, cost, []float64{12}, []float64{120000}, gen)

	// labor PV 228831.03 + capex 50000 + misc 5000
	assert.InDelta(t, 283831.03, total[0], 0.5)
}

func TestTotalBuildCostPV_SuccessAdjustment(t *testing.T) {
	e := NewEngine(0.10)

	core := domain.SimulationParameters{FTECount: 1, ProbSuccess: 0.5, UsefulLife: 5}
	base := domain.SimulationParameters{FTECount: 1, ProbSuccess: 1.0, UsefulLife: 5}

	adj := e.TotalBuildCostPV(core, domain.CostParameters{}, []float64{12}, []float64{100000}, sampling.NewGenerator(1))
	ref := e.TotalBuildCostPV(base, domain.CostParameters{}, []float64{12}, []float64{100000}, sampling.NewGenerator(1))

	// Halving the success probability doubles expected labor spend.
	assert.InDelta(t, 2*ref[0], adj[0], 0.01)
}
