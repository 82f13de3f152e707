package decision

import (
	"testing"

	"buildvsbuy/internal/domain"
)

func TestEvaluate_StrongBuild(t *testing.T) {
	evaluator := NewEvaluator()

	input := Input{
		ExpectedBuildCost:      200000,
		BuildCostP90:           250000,
		BuyTotalCost:           400000,
		NPVDifference:          200000,
		ProbBuildCheaper:       0.98,
		CoefficientOfVariation: 0.1,
	}

	result := evaluator.Evaluate(input)

	if result.Verdict != VerdictBuild {
		t.Errorf("expected Build, got %s", result.Verdict)
	}
	for i, c := range result.Criteria {
		if !c.Pass {
			t.Errorf("criterion %d (%s) should pass", i+1, c.Name)
		}
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %f", result.Confidence)
	}
}

func TestEvaluate_BuyOnTie(t *testing.T) {
	evaluator := NewEvaluator()

	// Exact zero difference resolves to Buy, mirroring the summarizer
	result := evaluator.Evaluate(Input{NPVDifference: 0})

	if result.Verdict != VerdictBuy {
		t.Errorf("tie must resolve to Buy, got %s", result.Verdict)
	}
}

func TestEvaluate_MarginalBuild(t *testing.T) {
	evaluator := NewEvaluator()

	// Positive expectation, but the conservative P90 estimate exceeds the
	// buy cost and the spread is wide: verdict Build with low confidence.
	input := Input{
		ExpectedBuildCost:      380000,
		BuildCostP90:           520000,
		BuyTotalCost:           400000,
		NPVDifference:          20000,
		ProbBuildCheaper:       0.55,
		CoefficientOfVariation: 0.8,
	}

	result := evaluator.Evaluate(input)

	if result.Verdict != VerdictBuild {
		t.Errorf("expected Build, got %s", result.Verdict)
	}
	// 2 of 4 criteria pass (positive NPV, majority cheaper)
	if result.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", result.Confidence)
	}
}

func TestFromResult(t *testing.T) {
	r := &domain.SimulationResult{
		ExpectedBuildCost: 200,
		BuildCostP90:      300,
		BuyTotalCost:      250,
		NPVDifference:     50,
		CostDistribution:  []float64{100, 200, 300, 400},
	}

	input := FromResult(r)

	if input.NPVDifference != 50 {
		t.Errorf("expected NPV difference 50, got %f", input.NPVDifference)
	}
	// 2 of 4 below the buy total of 250
	if input.ProbBuildCheaper != 0.5 {
		t.Errorf("expected prob 0.5, got %f", input.ProbBuildCheaper)
	}
	if input.CoefficientOfVariation <= 0 {
		t.Errorf("expected positive CV, got %f", input.CoefficientOfVariation)
	}
}
