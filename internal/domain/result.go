package domain

// Recommendation values. A tie at exactly zero NPV difference resolves to Buy.
const (
	RecommendationBuild = "Build"
	RecommendationBuy   = "Buy"
)

// ConfidenceLevel is the standard confidence level reported with every
// Monte Carlo result (the P10..P90 band).
const ConfidenceLevel = 80.0

// SimulationResult is the immutable output of one simulate call.
// JSON keys are a stable contract: the workbook generator and the UI layer
// read fields by name and expect dollar-denominated floats.
type SimulationResult struct {
	ExpectedBuildCost float64 `json:"expected_build_cost"`
	BuildCostP10      float64 `json:"build_cost_p10"`
	BuildCostP50      float64 `json:"build_cost_p50"`
	BuildCostP90      float64 `json:"build_cost_p90"`

	// RiskAdjustedCost is the conservative (P90) build estimate.
	RiskAdjustedCost float64 `json:"risk_adjusted_cost"`

	BuyTotalCost   float64 `json:"buy_total_cost"`
	NPVDifference  float64 `json:"npv_difference"`
	Recommendation string  `json:"recommendation"`

	// CostDistribution is the full per-simulation build cost vector in
	// present-value dollars, ordered by simulation index. Consumers derive
	// secondary statistics (histograms, probability of cheaper build) from it.
	CostDistribution []float64 `json:"cost_distribution"`

	// Echoed diagnostic inputs. prob_success and wacc are percentages here,
	// matching the input convention rather than the internal fractions.
	TechRisk        float64 `json:"tech_risk"`
	VendorRisk      float64 `json:"vendor_risk"`
	MarketRisk      float64 `json:"market_risk"`
	ProbSuccess     float64 `json:"prob_success"`
	ConfidenceLevel float64 `json:"confidence_level"`
	WACC            float64 `json:"wacc"`
	UsefulLife      float64 `json:"useful_life"`
}
