package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredict_SeniorEngineer(t *testing.T) {
	// base 60000+30000=90000, multiplier 1.75 -> 157500.
	estimate := Predict("Senior Engineer", 5)

	assert.Equal(t, "$147,500", estimate.Min)
	assert.Equal(t, "$172,500", estimate.Max)
	assert.Equal(t, "USD", estimate.Currency)
}

func TestPredict_LeadBonusStacksWithSenior(t *testing.T) {
	// 60000+30000+50000=140000 at multiplier 1.0.
	estimate := Predict("Senior Tech Lead", 0)

	assert.Equal(t, "$130,000", estimate.Min)
	assert.Equal(t, "$155,000", estimate.Max)
}

func TestPredict_PlainRole(t *testing.T) {
	estimate := Predict("Developer", 1)

	// 60000 * 1.15 = 69000.
	assert.Equal(t, "$59,000", estimate.Min)
	assert.Equal(t, "$84,000", estimate.Max)
}

func TestPredict_FractionalExperienceTruncates(t *testing.T) {
	// 60000 * 1.075 = 64500.
	estimate := Predict("Developer", 0.5)

	assert.Equal(t, "$54,500", estimate.Min)
	assert.Equal(t, "$79,500", estimate.Max)
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$0", formatDollars(0))
	assert.Equal(t, "$999", formatDollars(999))
	assert.Equal(t, "$1,000", formatDollars(1000))
	assert.Equal(t, "$1,234,567", formatDollars(1234567))
	assert.Equal(t, "-$2,500", formatDollars(-2500))
}
