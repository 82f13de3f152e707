package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders a comparison report as a CSV string.
func RenderCSV(r *ComparisonReport) string {
	var sb strings.Builder

	sb.WriteString("scenario,run_id,expected_build_cost,build_cost_p10,build_cost_p50,build_cost_p90,")
	sb.WriteString("buy_total_cost,npv_difference,prob_build_cheaper,recommendation\n")

	for _, o := range r.Outcomes {
		res := o.Result
		sb.WriteString(fmt.Sprintf("%s,%s,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.6f,%s\n",
			o.Scenario.Name,
			o.RunID,
			res.ExpectedBuildCost,
			res.BuildCostP10,
			res.BuildCostP50,
			res.BuildCostP90,
			res.BuyTotalCost,
			res.NPVDifference,
			o.ProbBuildCheaper,
			res.Recommendation,
		))
	}

	return sb.String()
}
