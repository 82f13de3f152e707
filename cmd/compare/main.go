// Command compare runs every scenario in a YAML file through the simulation
// engine and emits a ranked comparison report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"buildvsbuy/internal/observability"
	"buildvsbuy/internal/reporting"
	"buildvsbuy/internal/scenario"
	"buildvsbuy/internal/simulation"
)

func main() {
	scenariosPath := flag.String("scenarios", "", "Path to scenario YAML file (required)")
	nSimulations := flag.Int("n", simulation.DefaultSimulations, "Number of Monte Carlo simulations per scenario")
	seed := flag.Int64("seed", simulation.DefaultSeed, "PRNG seed shared by all scenarios")
	format := flag.String("format", "markdown", "Output format: markdown, csv or json")
	outPath := flag.String("o", "-", "Output file, or - for stdout")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *scenariosPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			log.Info().Str("addr", *metricsAddr).Msg("Serving metrics")
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	scenarios, err := scenario.LoadFile(*scenariosPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *scenariosPath).Msg("load scenarios")
	}

	sim := simulation.New(simulation.Options{NSimulations: *nSimulations, Seed: *seed})
	runner := scenario.NewRunner(sim)

	outcomes, err := runner.Compare(scenarios)
	if err != nil {
		log.Fatal().Err(err).Msg("compare scenarios")
	}

	report := reporting.NewComparisonReport(outcomes, *nSimulations, *seed)

	rendered, err := render(report, *format)
	if err != nil {
		log.Fatal().Err(err).Msg("render report")
	}

	if *outPath == "-" {
		fmt.Print(rendered)
		return
	}
	if err := os.WriteFile(*outPath, []byte(rendered), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("write report")
	}
	log.Info().Str("path", *outPath).Msg("Report written")
}

func render(report *reporting.ComparisonReport, format string) (string, error) {
	switch format {
	case "markdown":
		return reporting.RenderMarkdown(report), nil
	case "csv":
		return reporting.RenderCSV(report), nil
	case "json":
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
