package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ComputeRunID computes a deterministic run identifier using SHA256.
// Formula: SHA256(scenario_name|seed|n_simulations|sorted key=value pairs)
// Returns hex-encoded hash (64 characters). The same scenario under the same
// simulator configuration always maps to the same ID, so comparison outputs
// are diffable across runs.
func ComputeRunID(scenarioName string, seed int64, nSimulations int, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%d|%d", scenarioName, seed, nSimulations)
	for _, k := range keys {
		// JSON encoding normalizes value representation across types
		v, err := json.Marshal(params[k])
		if err != nil {
			v = []byte(fmt.Sprintf("%v", params[k]))
		}
		fmt.Fprintf(&sb, "|%s=%s", k, v)
	}

	hash := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(hash[:])
}
