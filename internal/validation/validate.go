// Package validation is the upstream gate in front of the simulator. The
// simulator itself never rejects input; callers that want hard failures on
// clearly invalid business inputs run this first.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Business bounds for the core inputs.
const (
	MinTimelineMonths = 1.0
	MaxTimelineMonths = 120.0
	MinFTECount       = 1.0
	MaxFTECount       = 1000.0
	MinFTECost        = 1000.0
	MaxFTECost        = 1000000.0
)

// requiredPositive are the parameters that must be present and > 0 for a
// financially meaningful run.
var requiredPositive = []string{
	"build_timeline", "fte_cost", "fte_count", "useful_life", "prob_success", "wacc",
}

// percentageBounded are the parameters constrained to 0..100.
var percentageBounded = []string{"prob_success", "wacc"}

// Validate checks the raw mapping against business bounds and returns one
// message per violation. An empty slice means the input is acceptable.
func Validate(raw map[string]any) []string {
	var errs []string

	for _, key := range requiredPositive {
		if value(raw, key) <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be greater than 0", label(key)))
		}
	}

	for _, key := range percentageBounded {
		if v := value(raw, key); v < 0 || v > 100 {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and 100", label(key)))
		}
	}

	if v := value(raw, "build_timeline"); v < MinTimelineMonths || v > MaxTimelineMonths {
		errs = append(errs, "Build timeline must be between 1 and 120 months")
	}
	if v := value(raw, "fte_count"); v < MinFTECount || v > MaxFTECount {
		errs = append(errs, "FTE count must be between 1 and 1000")
	}
	if v := value(raw, "fte_cost"); v < MinFTECost || v > MaxFTECost {
		errs = append(errs, "FTE cost must be between $1,000 and $1,000,000")
	}

	return errs
}

func value(raw map[string]any, key string) float64 {
	switch x := raw[key].(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// label turns a snake_case key into a title-cased message prefix.
func label(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "fte" {
			words[i] = "FTE"
			continue
		}
		if w == "wacc" {
			words[i] = "WACC"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
