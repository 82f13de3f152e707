// Package params normalizes a raw parameter mapping into the typed groups
// the simulation pipeline consumes, applying documented defaults.
package params

import "buildvsbuy/internal/domain"

// Documented defaults for the core parameter group.
const (
	DefaultBuildTimeline = 12.0     // months
	DefaultFTECost       = 150000.0 // dollars per FTE-year
	DefaultFTECount      = 1.0
	DefaultUsefulLife    = 5.0  // years
	DefaultProbSuccess   = 80.0 // percent
	DefaultWACC          = 8.0  // percent
)

// Inputs groups the four extracted parameter sets.
type Inputs struct {
	Core domain.SimulationParameters
	Risk domain.RiskParameters
	Cost domain.CostParameters
	Buy  domain.BuyParameters
}

// Extract normalizes a raw mapping into typed parameter groups.
// Every field silently falls back to its default on missing, nil, or
// unparseable values; extraction is pure and never fails.
func Extract(raw map[string]any) Inputs {
	return Inputs{
		Core: extractCore(raw),
		Risk: extractRisk(raw),
		Cost: extractCost(raw),
		Buy:  extractBuy(raw),
	}
}

func extractCore(raw map[string]any) domain.SimulationParameters {
	return domain.SimulationParameters{
		BuildTimeline:    field(raw, "build_timeline", DefaultBuildTimeline),
		BuildTimelineStd: nonNegative(field(raw, "build_timeline_std", 0)),
		FTECost:          field(raw, "fte_cost", DefaultFTECost),
		FTECostStd:       nonNegative(field(raw, "fte_cost_std", 0)),
		FTECount:         field(raw, "fte_count", DefaultFTECount),
		UsefulLife:       field(raw, "useful_life", DefaultUsefulLife),
		ProbSuccess:      clip(field(raw, "prob_success", DefaultProbSuccess)/100.0, 0.01, 1.0),
		WACC:             field(raw, "wacc", DefaultWACC) / 100.0,
		MiscCosts:        field(raw, "misc_costs", 0),
	}
}

func extractRisk(raw map[string]any) domain.RiskParameters {
	return domain.RiskParameters{
		TechRisk:   field(raw, "tech_risk", 0),
		VendorRisk: field(raw, "vendor_risk", 0),
		MarketRisk: field(raw, "market_risk", 0),
	}
}

func extractCost(raw map[string]any) domain.CostParameters {
	return domain.CostParameters{
		MaintOpex:    field(raw, "maint_opex", 0),
		MaintOpexStd: nonNegative(field(raw, "maint_opex_std", 0)),
		CapEx:        field(raw, "capex", 0),
		Amortization: field(raw, "amortization", 0),
	}
}

func extractBuy(raw map[string]any) domain.BuyParameters {
	return domain.BuyParameters{
		ProductPrice:         field(raw, "product_price", 0),
		SubscriptionPrice:    field(raw, "subscription_price", 0),
		SubscriptionIncrease: field(raw, "subscription_increase", 0),
		BuySelector:          extractSelector(raw["buy_selector"]),
	}
}

// extractSelector accepts a string slice, a loose []any of strings, or a
// single string. Unknown option names are dropped.
func extractSelector(v any) []string {
	var candidates []string
	switch x := v.(type) {
	case nil:
	case string:
		candidates = []string{x}
	case []string:
		candidates = x
	case []any:
		for _, e := range x {
			if s, ok := e.(string); ok {
				candidates = append(candidates, s)
			}
		}
	}

	var out []string
	for _, c := range candidates {
		if c == domain.BuyOptionOneTime || c == domain.BuyOptionSubscription {
			out = append(out, c)
		}
	}
	return out
}
