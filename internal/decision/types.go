package decision

// Verdict represents the final build-vs-buy call.
type Verdict string

const (
	VerdictBuild Verdict = "Build"
	VerdictBuy   Verdict = "Buy"
)

// Input contains the numeric metrics the checklist evaluates.
type Input struct {
	ExpectedBuildCost float64
	BuildCostP90      float64
	BuyTotalCost      float64
	NPVDifference     float64

	// ProbBuildCheaper is the fraction of simulations with build cost below
	// the buy total.
	ProbBuildCheaper float64

	// CoefficientOfVariation measures distribution spread relative to mean.
	CoefficientOfVariation float64
}

// CriterionResult represents pass/fail for one supporting criterion.
type CriterionResult struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// Result contains the verdict with its supporting checklist. The verdict
// restates the simulation's recommendation; the criteria qualify how robust
// it is, they never override it.
type Result struct {
	Verdict  Verdict
	Criteria []CriterionResult

	// Confidence is the fraction of supporting criteria that passed.
	Confidence float64
}
