// Package decision qualifies a simulation result with a supporting
// criteria checklist for report consumers.
package decision

import (
	"fmt"

	"buildvsbuy/internal/analytics"
	"buildvsbuy/internal/domain"
)

// spreadThreshold is the coefficient-of-variation level above which the
// distribution is considered too dispersed to lean on the point estimate.
const spreadThreshold = 0.5

// Evaluator evaluates the decision checklist.
type Evaluator struct{}

// NewEvaluator creates a new checklist evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// FromResult builds the checklist input from a simulation result.
func FromResult(r *domain.SimulationResult) Input {
	return Input{
		ExpectedBuildCost:      r.ExpectedBuildCost,
		BuildCostP90:           r.BuildCostP90,
		BuyTotalCost:           r.BuyTotalCost,
		NPVDifference:          r.NPVDifference,
		ProbBuildCheaper:       analytics.ProbBuildCheaper(r.CostDistribution, r.BuyTotalCost),
		CoefficientOfVariation: analytics.CoefficientOfVariation(r.CostDistribution),
	}
}

// Evaluate produces the verdict plus supporting criteria. The verdict
// follows the fixed boundary policy: Build iff the NPV difference is
// strictly positive, a tie resolves to Buy.
func (e *Evaluator) Evaluate(input Input) *Result {
	verdict := VerdictBuy
	if input.NPVDifference > 0 {
		verdict = VerdictBuild
	}

	criteria := []CriterionResult{
		{
			Name:      "Expected build cost below buy",
			Threshold: "npv_difference > 0",
			Actual:    fmt.Sprintf("$%.0f", input.NPVDifference),
			Pass:      input.NPVDifference > 0,
		},
		{
			Name:      "Build cheaper in most simulations",
			Threshold: ">= 50%",
			Actual:    fmt.Sprintf("%.1f%%", input.ProbBuildCheaper*100),
			Pass:      input.ProbBuildCheaper >= 0.5,
		},
		{
			Name:      "Conservative (P90) build cost below buy",
			Threshold: "P90 < buy_total_cost",
			Actual:    fmt.Sprintf("P90=$%.0f vs $%.0f", input.BuildCostP90, input.BuyTotalCost),
			Pass:      input.BuildCostP90 < input.BuyTotalCost,
		},
		{
			Name:      "Distribution spread acceptable",
			Threshold: fmt.Sprintf("CV <= %.2f", spreadThreshold),
			Actual:    fmt.Sprintf("%.3f", input.CoefficientOfVariation),
			Pass:      input.CoefficientOfVariation <= spreadThreshold,
		},
	}

	passed := 0
	for _, c := range criteria {
		if c.Pass {
			passed++
		}
	}

	return &Result{
		Verdict:    verdict,
		Criteria:   criteria,
		Confidence: float64(passed) / float64(len(criteria)),
	}
}
