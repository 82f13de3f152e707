// Package reporting renders scenario comparison outcomes for human review.
package reporting

import (
	"time"

	"buildvsbuy/internal/domain"
)

// ComparisonReport represents a rendered scenario comparison.
type ComparisonReport struct {
	GeneratedAt  time.Time
	NSimulations int
	Seed         int64

	// Outcomes are pre-ranked by npv_difference descending.
	Outcomes []domain.ScenarioOutcome
}

// NewComparisonReport assembles a report from ranked outcomes.
func NewComparisonReport(outcomes []domain.ScenarioOutcome, nSimulations int, seed int64) *ComparisonReport {
	return &ComparisonReport{
		GeneratedAt:  time.Now().UTC(),
		NSimulations: nSimulations,
		Seed:         seed,
		Outcomes:     outcomes,
	}
}
