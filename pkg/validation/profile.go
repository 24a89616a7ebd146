// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"
)

// knownActivities are the activity categories the engine classifies.
var knownActivities = map[string]bool{
	"SERVICE":   true,
	"COMMERCE":  true,
	"ARTISANAT": true,
	"LIBERAL":   true,
}

// ValidatePartnersCount warns when the declared partner count cannot
// describe a company.
func ValidatePartnersCount(count int) []string {
	if count < 1 {
		return []string{fmt.Sprintf("partnersCount is %d - a company needs at least one partner; the engine will fall back to defaults", count)}
	}
	return nil
}

// ValidateAmount warns on negative amounts. The adapters coerce them to
// zero before the engine sees them.
func ValidateAmount(field string, value float64) []string {
	if value < 0 {
		return []string{fmt.Sprintf("%s is negative (%v) - it will be treated as 0", field, value)}
	}
	return nil
}

// ValidateSalaryAgainstTurnover warns when the planned salary exceeds the
// planned turnover, a common data-entry mistake in the wizard.
func ValidateSalaryAgainstTurnover(salary, turnover float64) []string {
	if salary > 0 && turnover > 0 && salary > turnover {
		return []string{fmt.Sprintf("projectedSalary (%v) exceeds estimatedTurnover (%v)", salary, turnover)}
	}
	return nil
}

// ValidateActivity warns when the activity string is not one of the known
// categories; classification will default to SERVICE.
func ValidateActivity(activity string) []string {
	if activity == "" {
		return nil
	}
	if !knownActivities[strings.ToUpper(strings.TrimSpace(activity))] {
		return []string{fmt.Sprintf("activity %q is not a known category - it will be classified as SERVICE", activity)}
	}
	return nil
}
