package domain

// SimulationParameters holds the core build-side inputs after extraction.
// prob_success and wacc are stored as fractions, not percentages.
type SimulationParameters struct {
	BuildTimeline    float64 // months
	BuildTimelineStd float64 // months, >= 0
	FTECost          float64 // annual fully-loaded cost per FTE
	FTECostStd       float64 // >= 0
	FTECount         float64
	UsefulLife       float64 // years
	ProbSuccess      float64 // fraction, clipped to [0.01, 1.0]
	WACC             float64 // annual fraction
	MiscCosts        float64 // one-time, year 0
}

// RiskParameters holds the three risk premiums as percentages.
// They combine additively into the total risk premium.
type RiskParameters struct {
	TechRisk   float64
	VendorRisk float64
	MarketRisk float64
}

// TotalRiskPercent returns the additive total risk premium.
func (r RiskParameters) TotalRiskPercent() float64 {
	return r.TechRisk + r.VendorRisk + r.MarketRisk
}

// CostParameters holds the optional recurring cost inputs.
type CostParameters struct {
	MaintOpex    float64 // annual, years 1..useful_life
	MaintOpexStd float64 // >= 0
	CapEx        float64 // one-time, year 0
	Amortization float64 // monthly nominal during build
}

// Buy option identifiers accepted in buy_selector.
const (
	BuyOptionOneTime      = "one_time"
	BuyOptionSubscription = "subscription"
)

// BuyParameters holds the buy-side inputs.
type BuyParameters struct {
	ProductPrice         float64
	SubscriptionPrice    float64
	SubscriptionIncrease float64 // annual escalation, percent
	BuySelector          []string
}

// HasOption reports whether the given buy option is selected.
func (b BuyParameters) HasOption(option string) bool {
	for _, o := range b.BuySelector {
		if o == option {
			return true
		}
	}
	return false
}
