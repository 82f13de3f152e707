package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() map[string]any {
	return map[string]any{
		"build_timeline": 12.0,
		"fte_cost":       150000.0,
		"fte_count":      2.0,
		"useful_life":    5.0,
		"prob_success":   80.0,
		"wacc":           8.0,
	}
}

func TestValidate_AcceptsGoodInput(t *testing.T) {
	assert.Empty(t, Validate(validParams()))
}

func TestValidate_RequiredPositive(t *testing.T) {
	p := validParams()
	delete(p, "useful_life")

	errs := Validate(p)
	assert.Contains(t, errs, "Useful Life must be greater than 0")
}

func TestValidate_PercentageBounds(t *testing.T) {
	p := validParams()
	p["prob_success"] = 130.0

	errs := Validate(p)
	assert.Contains(t, errs, "Prob Success must be between 0 and 100")

	p = validParams()
	p["wacc"] = -1.0
	errs = Validate(p)
	assert.Contains(t, errs, "WACC must be between 0 and 100")
}

func TestValidate_BusinessRanges(t *testing.T) {
	p := validParams()
	p["build_timeline"] = 200.0
	assert.Contains(t, Validate(p), "Build timeline must be between 1 and 120 months")

	p = validParams()
	p["fte_count"] = 5000.0
	assert.Contains(t, Validate(p), "FTE count must be between 1 and 1000")

	p = validParams()
	p["fte_cost"] = 500.0
	assert.Contains(t, Validate(p), "FTE cost must be between $1,000 and $1,000,000")
}

func TestValidate_StringValuesCoerced(t *testing.T) {
	p := validParams()
	p["fte_cost"] = "150000"
	assert.Empty(t, Validate(p))

	p["fte_cost"] = "garbage"
	errs := Validate(p)
	assert.NotEmpty(t, errs)
}
