package checks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
)

var (
	currencyChars = regexp.MustCompile(`[₹$,]`)
	numericToken  = regexp.MustCompile(`\d+(\.\d+)?`)
)

// ParseSalaryAmount extracts a numeric amount from a JSON number or a
// string like "₹25,000 per month". Returns nil when nothing numeric is
// found.
func ParseSalaryAmount(raw any) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case string:
		return parseSalaryString(v)
	default:
		return parseSalaryString(fmt.Sprint(v))
	}
}

func parseSalaryString(s string) *float64 {
	s = currencyChars.ReplaceAllString(s, "")
	token := numericToken.FindString(s)
	if token == "" {
		return nil
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil
	}
	return &f
}

// SalaryPlausibility compares the offered amount against the benchmark
// range for the region, seniority bucket, and pay period. An unparseable
// amount or an unknown benchmark key is a neutral pass.
func SalaryPlausibility(salaryAmount any, salaryPeriod, jobRole, regionHint string) models.SalaryCheckResult {
	amount := ParseSalaryAmount(salaryAmount)
	var flags []string
	score := 100

	if amount == nil {
		flags = append(flags, "Could not parse salary amount; skipping salary realism checks.")
		return models.SalaryCheckResult{Score: score, Flags: flags}
	}

	period := strings.ToLower(strings.TrimSpace(salaryPeriod))
	role := strings.ToLower(jobRole)

	var key string
	switch {
	case strings.Contains(role, "intern"):
		key = fmt.Sprintf("%s_intern_%s", regionHint, period)
	case strings.Contains(role, "data") && strings.Contains(role, "analyst"):
		key = fmt.Sprintf("%s_fresher_data_analyst_%s", regionHint, period)
	default:
		key = fmt.Sprintf("%s_fresher_software_engineer_%s", regionHint, period)
	}

	bench, ok := salaryBenchmarks[key]
	if !ok {
		flags = append(flags, fmt.Sprintf("No salary benchmark defined for key '%s'. Using neutral score.", key))
		return models.SalaryCheckResult{Score: score, Flags: flags, ParsedAmount: amount}
	}

	a := *amount
	switch {
	case a < bench.Low*0.3:
		flags = append(flags, fmt.Sprintf("Offered salary (%s) is extremely low compared to typical range %s-%s.",
			formatAmount(a), formatAmount(bench.Low), formatAmount(bench.High)))
		score -= 30
	case a > bench.High*2:
		flags = append(flags, fmt.Sprintf("Offered salary (%s) is extremely high compared to typical range %s-%s.",
			formatAmount(a), formatAmount(bench.Low), formatAmount(bench.High)))
		score -= 40
	case a > bench.High*1.3:
		flags = append(flags, fmt.Sprintf("Offered salary (%s) is higher than usual; verify with official HR.",
			formatAmount(a)))
		score -= 15
	}

	return models.SalaryCheckResult{
		Score:        clampScore(score),
		Flags:        flags,
		ParsedAmount: amount,
	}
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
