// Package buycost computes the deterministic NPV of the buy option.
package buycost

import (
	"math"

	"buildvsbuy/internal/domain"
)

// Calculate returns the total present-value cost of the selected buy options.
// A one-time purchase is a year-0 cash flow taken at face value. A
// subscription is a 1-based escalating annuity: the year-y payment is
// price * (1+increase)^(y-1), discounted at WACC over round(useful_life)
// years. Both options add when both are selected; no selection costs zero.
func Calculate(buy domain.BuyParameters, core domain.SimulationParameters) float64 {
	total := 0.0

	if buy.HasOption(domain.BuyOptionOneTime) {
		total += buy.ProductPrice
	}

	if buy.HasOption(domain.BuyOptionSubscription) {
		increase := buy.SubscriptionIncrease / 100.0
		years := int(math.Round(core.UsefulLife))
		for year := 1; year <= years; year++ {
			payment := buy.SubscriptionPrice * math.Pow(1+increase, float64(year-1))
			total += payment / math.Pow(1+core.WACC, float64(year))
		}
	}

	return total
}
