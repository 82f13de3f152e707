package analytics

import (
	"fmt"
	"math"
	"sort"

	"buildvsbuy/internal/domain"
)

// RunFunc runs one simulation over a raw parameter mapping. The simulator's
// Simulate method satisfies it.
type RunFunc func(params map[string]any) *domain.SimulationResult

// SensitivityDriver reports how far one assumption can move the NPV
// difference when swung across its low/high range.
type SensitivityDriver struct {
	Parameter   string
	LowNPV      float64
	HighNPV     float64
	NPVDeltaUSD float64
	Direction   string
}

// sensitivityParams are the assumptions swung one at a time.
var sensitivityParams = []string{
	"build_timeline",
	"fte_cost",
	"fte_count",
	"prob_success",
	"wacc",
	"maint_opex",
}

// Sensitivity swings each driver parameter by swingPct (e.g. 0.2 for ±20%)
// around its base value, holding everything else fixed, and ranks drivers by
// absolute NPV-difference impact. Parameters absent from base are skipped:
// only assumptions the caller actually set are worth swinging.
func Sensitivity(run RunFunc, base map[string]any, swingPct float64) []SensitivityDriver {
	if swingPct <= 0 {
		swingPct = 0.2
	}

	out := make([]SensitivityDriver, 0, len(sensitivityParams))
	for _, name := range sensitivityParams {
		v, ok := baseFloat(base, name)
		if !ok {
			continue
		}

		low := run(override(base, name, v*(1-swingPct)))
		high := run(override(base, name, v*(1+swingPct)))

		delta := high.NPVDifference - low.NPVDifference
		direction := fmt.Sprintf("Raising %s moves NPV difference by $%.0f", name, delta)

		out = append(out, SensitivityDriver{
			Parameter:   name,
			LowNPV:      low.NPVDifference,
			HighNPV:     high.NPVDifference,
			NPVDeltaUSD: math.Abs(delta),
			Direction:   direction,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].NPVDeltaUSD > out[j].NPVDeltaUSD })
	return out
}

func baseFloat(params map[string]any, key string) (float64, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, x != 0
	case int:
		return float64(x), x != 0
	case int64:
		return float64(x), x != 0
	default:
		return 0, false
	}
}

func override(base map[string]any, key string, value float64) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	out[key] = value
	return out
}
