package thresholds

import (
	"sort"

	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"go.uber.org/zap"
)

// Severity classifies how close an observed value is to a threshold.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is one triggered threshold. Ratio is observed value divided by
// the threshold value.
type Alert struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity"`
	Link        string   `json:"link,omitempty"`
	Ratio       float64  `json:"ratio"`
	Threshold   float64  `json:"threshold"`
}

// Evaluator computes threshold alerts for a company profile.
type Evaluator struct {
	logger *zap.Logger
}

// NewEvaluator creates an evaluator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger}
}

// Evaluate filters the catalog down to applicable definitions and emits an
// alert for each one whose observed value reaches the warning band.
// Entries with a non-positive threshold are catalog-authoring errors and
// are skipped rather than divided by.
func (e *Evaluator) Evaluate(profile company.CompanyProfile, catalog Catalog) []Alert {
	var alerts []Alert
	for _, def := range catalog.All() {
		if !matches(def, profile) {
			continue
		}
		if def.Threshold <= 0 {
			e.logger.Warn("Skipping threshold with non-positive value",
				zap.String("id", def.ID),
				zap.Float64("threshold", def.Threshold),
			)
			continue
		}

		observed := observedValue(def.Category, profile)
		ratio := observed / def.Threshold

		var severity Severity
		switch {
		case ratio >= def.CriticalRatio:
			severity = SeverityCritical
		case ratio >= def.WarningRatio:
			severity = SeverityWarning
		default:
			continue
		}

		e.logger.Debug("Threshold triggered",
			zap.String("id", def.ID),
			zap.Float64("ratio", ratio),
			zap.String("severity", string(severity)),
		)

		alerts = append(alerts, Alert{
			ID:          def.ID,
			Title:       def.Title,
			Message:     def.Message,
			Description: def.Description,
			Severity:    severity,
			Link:        def.Link,
			Ratio:       ratio,
			Threshold:   def.Threshold,
		})
	}
	return alerts
}

// matches applies the definition's applicability predicate: every
// populated filter must match the profile or carry the ALL wildcard.
func matches(def Definition, profile company.CompanyProfile) bool {
	if len(def.CompanyTypes) > 0 && !containsType(def.CompanyTypes, string(profile.CompanyType)) {
		return false
	}
	if !filterMatches(def.ActivityType, string(profile.ActivityCategory)) {
		return false
	}
	if !filterMatches(def.TaxRegime, string(profile.TaxRegime)) {
		return false
	}
	if !filterMatches(def.VATRegime, string(profile.VATRegime)) {
		return false
	}
	if !filterMatches(def.SocialRegime, string(profile.SocialRegime)) {
		return false
	}
	return true
}

func containsType(types []string, value string) bool {
	for _, t := range types {
		if t == MatchAll || t == value {
			return true
		}
	}
	return false
}

func filterMatches(filter, value string) bool {
	return filter == "" || filter == MatchAll || filter == value
}

// observedValue selects which profile number the category is measured
// against. Unknown categories fall to turnover.
func observedValue(category Category, profile company.CompanyProfile) float64 {
	switch category {
	case CategoryEmploi:
		return profile.EmployeesCount
	case CategoryComptable:
		return profile.TotalBilan
	default:
		return profile.EstimatedTurnover
	}
}

// SortAlerts orders alerts for display: critical before warning, ties
// broken by ascending threshold value so the most imminent obligations
// come first.
func SortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Severity != alerts[j].Severity {
			return alerts[i].Severity == SeverityCritical
		}
		return alerts[i].Threshold < alerts[j].Threshold
	})
}
