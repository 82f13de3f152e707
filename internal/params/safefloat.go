package params

import (
	"strconv"
	"strings"
)

// safeFloat coerces a loosely-typed parameter value to float64.
// Missing (nil), empty-string, and unparseable values fall back to def;
// malformed input never produces an error. Explicit numeric zero is kept.
func safeFloat(v any, def float64) float64 {
	switch x := v.(type) {
	case nil:
		return def
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return def
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// field looks up key in the raw mapping and coerces it, falling back to def
// when the key is absent.
func field(raw map[string]any, key string, def float64) float64 {
	v, ok := raw[key]
	if !ok {
		return def
	}
	return safeFloat(v, def)
}

// nonNegative floors a value at zero. Used for the *_std fields.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// clip bounds v to [lo, hi].
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
