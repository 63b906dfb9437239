// Package salary estimates compensation bands from role title and
// experience.
package salary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// Formula constants: a flat base, seniority bonuses keyed on the role
// title, and a 15% multiplier per year of experience. The band spreads
// the prediction by -10k/+15k.
const (
	baseSalary     = 60000
	seniorBonus    = 30000
	leadBonus      = 50000
	yearMultiplier = 0.15
	bandBelow      = 10000
	bandAbove      = 15000
)

// Predict returns a salary band for a role title and years of
// experience. Title matching is case-insensitive substring: "senior"
// and "lead" bonuses stack when both appear.
func Predict(role string, experience float64) types.SalaryEstimate {
	base := float64(baseSalary)
	roleLower := strings.ToLower(role)
	if strings.Contains(roleLower, "senior") {
		base += seniorBonus
	}
	if strings.Contains(roleLower, "lead") {
		base += leadBonus
	}

	predicted := int(base * (1 + experience*yearMultiplier))
	return types.SalaryEstimate{
		Min:      formatDollars(predicted - bandBelow),
		Max:      formatDollars(predicted + bandAbove),
		Currency: "USD",
	}
}

// formatDollars renders an amount as "$1,234,567".
func formatDollars(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return fmt.Sprintf("%s$%s", sign, sb.String())
}
