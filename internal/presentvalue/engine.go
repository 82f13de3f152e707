// Package presentvalue converts each build cost component into a present
// value under its own cash-flow timing convention and sums the components
// into the per-simulation total cost vector.
//
// Timing conventions:
//   - labor is smeared evenly across the build timeline and discounted from
//     period midpoints;
//   - capex and misc costs land at year 0 and are not discounted;
//   - amortization is a fixed monthly payment during the build;
//   - maintenance opex is an annual charge over the useful life.
package presentvalue

import (
	"math"

	"buildvsbuy/internal/domain"
	"buildvsbuy/internal/sampling"
)

// Engine computes present values at a fixed annual discount rate.
type Engine struct {
	wacc float64
}

// NewEngine creates an engine discounting at the given annual WACC fraction.
func NewEngine(wacc float64) *Engine {
	return &Engine{wacc: wacc}
}

// LaborPV discounts success-adjusted nominal labor cost vectors. Inputs are
// structure-of-arrays: nominalLabor[i] pairs with timelineMonths[i].
//
// A timeline within one year is discounted from the single-year midpoint
// (exponent 0.5). Longer timelines are split into whole years, each year's
// even slice discounted from its own midpoint (year + 0.5), plus a partial
// final year discounted from the partial period's midpoint. This
// approximates continuous spending rather than a lump payment at the end.
func (e *Engine) LaborPV(nominalLabor, timelineMonths []float64) []float64 {
	pv := make([]float64, len(nominalLabor))
	for i := range nominalLabor {
		pv[i] = e.laborPVOne(nominalLabor[i], timelineMonths[i])
	}
	return pv
}

func (e *Engine) laborPVOne(labor, months float64) float64 {
	years := months / 12.0
	if years <= 1 {
		return labor / math.Pow(1+e.wacc, 0.5)
	}

	fullYears := int(years)
	remaining := years - float64(fullYears)
	costPerYear := labor / years

	pv := 0.0
	for year := 0; year < fullYears; year++ {
		pv += costPerYear / math.Pow(1+e.wacc, float64(year)+0.5)
	}
	if remaining > 0 {
		partialCost := costPerYear * remaining
		midpoint := float64(fullYears) + remaining/2
		pv += partialCost / math.Pow(1+e.wacc, midpoint)
	}
	return pv
}

// AmortizationPV discounts a fixed monthly payment over each simulation's
// build timeline. The annual WACC is converted to a monthly rate by proper
// compounding, (1+wacc)^(1/12) - 1, not wacc/12.
func (e *Engine) AmortizationPV(monthly float64, timelineMonths []float64) []float64 {
	pv := make([]float64, len(timelineMonths))
	if monthly <= 0 {
		return pv
	}

	monthlyRate := math.Pow(1+e.wacc, 1.0/12.0) - 1
	for i, timeline := range timelineMonths {
		months := int(math.Round(timeline))
		sum := 0.0
		for m := 1; m <= months; m++ {
			sum += monthly / math.Pow(1+monthlyRate, float64(m))
		}
		pv[i] = sum
	}
	return pv
}

// OpexPV discounts sampled annual maintenance opex over the useful life,
// charged at the end of years 1..round(usefulLife). Samples are drawn here so
// the opex draw stays in its fixed place in the generator sequence; nothing
// is drawn when maintenance opex is absent.
func (e *Engine) OpexPV(cost domain.CostParameters, usefulLife float64, gen *sampling.Generator, n int) []float64 {
	pv := make([]float64, n)
	if cost.MaintOpex <= 0 {
		return pv
	}

	samples := gen.Normal(cost.MaintOpex, cost.MaintOpexStd, n)
	years := int(math.Round(usefulLife))
	for i, opex := range samples {
		sum := 0.0
		for y := 1; y <= years; y++ {
			sum += opex / math.Pow(1+e.wacc, float64(y))
		}
		pv[i] = sum
	}
	return pv
}

// TotalBuildCostPV assembles the full pre-risk build cost vector for one run:
// success-adjusted labor plus capex, amortization, maintenance opex, and
// miscellaneous year-0 costs.
func (e *Engine) TotalBuildCostPV(
	core domain.SimulationParameters,
	cost domain.CostParameters,
	timelineMonths, fteCost []float64,
	gen *sampling.Generator,
) []float64 {
	n := len(timelineMonths)

	nominalLabor := make([]float64, n)
	for i := range nominalLabor {
		nominalLabor[i] = (timelineMonths[i] / 12.0) * fteCost[i] * core.FTECount / core.ProbSuccess
	}

	total := e.LaborPV(nominalLabor, timelineMonths)

	amort := e.AmortizationPV(cost.Amortization, timelineMonths)
	opex := e.OpexPV(cost, core.UsefulLife, gen, n)
	for i := range total {
		total[i] += cost.CapEx + amort[i] + opex[i] + core.MiscCosts
	}
	return total
}
