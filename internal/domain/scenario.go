package domain

// Scenario is a named raw parameter set for side-by-side comparison runs.
// Params is the same loose mapping simulate accepts; extraction applies the
// usual defaults, so a scenario only needs to name the fields it overrides.
type Scenario struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// ScenarioOutcome pairs a scenario with its simulation result.
type ScenarioOutcome struct {
	RunID    string
	Scenario Scenario
	Result   *SimulationResult

	// ProbBuildCheaper is the fraction of simulations whose build cost came
	// in below the buy total.
	ProbBuildCheaper float64
}
