// Command simulate runs one build-vs-buy simulation over a JSON parameter
// mapping and prints the result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"buildvsbuy/internal/decision"
	"buildvsbuy/internal/simulation"
	"buildvsbuy/internal/validation"
)

func main() {
	paramsPath := flag.String("params", "-", "Path to JSON parameter file, or - for stdin")
	nSimulations := flag.Int("n", simulation.DefaultSimulations, "Number of Monte Carlo simulations")
	seed := flag.Int64("seed", simulation.DefaultSeed, "PRNG seed for reproducible runs")
	withDistribution := flag.Bool("distribution", false, "Include the full cost distribution in output")
	withChecklist := flag.Bool("checklist", false, "Include the decision criteria checklist")
	validateOnly := flag.Bool("validate", false, "Validate input against business bounds and exit")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	raw, err := readParams(*paramsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("read parameters")
	}

	if *validateOnly {
		errs := validation.Validate(raw)
		if len(errs) == 0 {
			fmt.Println("OK")
			return
		}
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	sim := simulation.New(simulation.Options{NSimulations: *nSimulations, Seed: *seed})

	log.Debug().Int("n", *nSimulations).Int64("seed", *seed).Msg("Running simulation")
	result := sim.Simulate(raw)

	out := map[string]any{"result": result}
	if !*withDistribution {
		// The distribution can be thousands of entries; trim it by default.
		trimmed := *result
		trimmed.CostDistribution = nil
		out["result"] = &trimmed
	}
	if *withChecklist {
		out["checklist"] = decision.NewEvaluator().Evaluate(decision.FromResult(result))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("encode result")
	}
}

func readParams(path string) (map[string]any, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode parameter JSON: %w", err)
	}
	return raw, nil
}
