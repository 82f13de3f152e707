package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"buildvsbuy/internal/domain"
)

func sampleReport() *ComparisonReport {
	return NewComparisonReport([]domain.ScenarioOutcome{
		{
			RunID:    "abc123",
			Scenario: domain.Scenario{Name: "lean-team"},
			Result: &domain.SimulationResult{
				ExpectedBuildCost: 99000,
				BuildCostP10:      99000,
				BuildCostP50:      99000,
				BuildCostP90:      99000,
				BuyTotalCost:      300000,
				NPVDifference:     201000,
				Recommendation:    domain.RecommendationBuild,
			},
			ProbBuildCheaper: 1.0,
		},
		{
			RunID:    "def456",
			Scenario: domain.Scenario{Name: "full-team"},
			Result: &domain.SimulationResult{
				ExpectedBuildCost: 880000,
				BuyTotalCost:      300000,
				NPVDifference:     -580000,
				Recommendation:    domain.RecommendationBuy,
			},
			ProbBuildCheaper: 0.0,
		},
	}, 1000, 42)
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(sampleReport())

	assert.Contains(t, md, "# Build vs Buy Scenario Comparison")
	assert.Contains(t, md, "Simulations per scenario: 1000 | Seed: 42")
	assert.Contains(t, md, "| 1 | lean-team |")
	assert.Contains(t, md, "| 2 | full-team |")
	assert.Contains(t, md, "$201000")
	assert.Contains(t, md, "Build |")
	assert.Contains(t, md, "- lean-team: `abc123`")

	// Ranking preserves outcome order
	assert.Less(t, strings.Index(md, "lean-team"), strings.Index(md, "full-team"))
}

func TestRenderCSV(t *testing.T) {
	csv := RenderCSV(sampleReport())
	lines := strings.Split(strings.TrimSpace(csv), "\n")

	assert.Len(t, lines, 3) // header + 2 rows
	assert.True(t, strings.HasPrefix(lines[0], "scenario,run_id,"))
	assert.Contains(t, lines[1], "lean-team,abc123,99000.00")
	assert.Contains(t, lines[1], ",1.000000,Build")
	assert.Contains(t, lines[2], "full-team,def456")
}
