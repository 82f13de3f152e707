// Package scenario runs named parameter sets side by side and ranks the
// outcomes, for what-if comparison of build-vs-buy assumptions.
package scenario

import (
	"errors"
	"sort"

	"github.com/rs/zerolog/log"

	"buildvsbuy/internal/analytics"
	"buildvsbuy/internal/domain"
	"buildvsbuy/internal/idhash"
	"buildvsbuy/internal/observability"
	"buildvsbuy/internal/simulation"
)

// Runner errors
var (
	ErrNoScenarios   = errors.New("no scenarios to compare")
	ErrDuplicateName = errors.New("duplicate scenario name")
)

// Runner executes comparison runs over a shared simulator configuration.
// Every scenario runs under the same seed and batch size, so outcome
// differences are attributable to the parameters alone.
type Runner struct {
	sim *simulation.Simulator
}

// NewRunner creates a comparison runner.
func NewRunner(sim *simulation.Simulator) *Runner {
	return &Runner{sim: sim}
}

// Compare simulates every scenario and returns outcomes ranked by
// npv_difference descending (strongest build case first), ties broken by
// name for a stable order. Scenario names must be unique.
func (r *Runner) Compare(scenarios []domain.Scenario) ([]domain.ScenarioOutcome, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	seen := make(map[string]bool, len(scenarios))
	for _, sc := range scenarios {
		if seen[sc.Name] {
			return nil, ErrDuplicateName
		}
		seen[sc.Name] = true
	}

	log.Info().
		Int("scenarios", len(scenarios)).
		Int("n_simulations", r.sim.NSimulations()).
		Int64("seed", r.sim.Seed()).
		Msg("Starting scenario comparison")

	outcomes := make([]domain.ScenarioOutcome, 0, len(scenarios))
	for _, sc := range scenarios {
		result := r.sim.Simulate(sc.Params)
		outcomes = append(outcomes, domain.ScenarioOutcome{
			RunID:            idhash.ComputeRunID(sc.Name, r.sim.Seed(), r.sim.NSimulations(), sc.Params),
			Scenario:         sc,
			Result:           result,
			ProbBuildCheaper: analytics.ProbBuildCheaper(result.CostDistribution, result.BuyTotalCost),
		})

		log.Debug().
			Str("scenario", sc.Name).
			Float64("npv_difference", result.NPVDifference).
			Str("recommendation", result.Recommendation).
			Msg("Scenario simulated")
	}

	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].Result.NPVDifference != outcomes[j].Result.NPVDifference {
			return outcomes[i].Result.NPVDifference > outcomes[j].Result.NPVDifference
		}
		return outcomes[i].Scenario.Name < outcomes[j].Scenario.Name
	})

	observability.RecordComparison(len(scenarios))
	return outcomes, nil
}
