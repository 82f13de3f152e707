package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders a comparison report as a Markdown string.
func RenderMarkdown(r *ComparisonReport) string {
	var sb strings.Builder

	sb.WriteString("# Build vs Buy Scenario Comparison\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Scenarios: %d | Simulations per scenario: %d | Seed: %d\n\n",
		len(r.Outcomes), r.NSimulations, r.Seed))

	sb.WriteString("## Ranking\n\n")
	sb.WriteString("| Rank | Scenario | Expected Build | P10 | P90 | Buy Total | NPV Difference | P(Build Cheaper) | Recommendation |\n")
	sb.WriteString("|------|----------|----------------|-----|-----|-----------|----------------|------------------|----------------|\n")
	for i, o := range r.Outcomes {
		res := o.Result
		sb.WriteString(fmt.Sprintf("| %d | %s | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f | %.1f%% | %s |\n",
			i+1,
			o.Scenario.Name,
			res.ExpectedBuildCost,
			res.BuildCostP10,
			res.BuildCostP90,
			res.BuyTotalCost,
			res.NPVDifference,
			o.ProbBuildCheaper*100,
			res.Recommendation,
		))
	}
	sb.WriteString("\n")

	sb.WriteString("## Run References\n\n")
	for _, o := range r.Outcomes {
		sb.WriteString(fmt.Sprintf("- %s: `%s`\n", o.Scenario.Name, o.RunID))
	}
	sb.WriteString("\n")

	return sb.String()
}
